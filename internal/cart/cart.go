package cart

import (
	"strconv"
	"sync"
)

// Item is a snapshot of an artwork at the moment it entered the cart.
// The payment endpoint never trusts any of these fields.
type Item struct {
	ArtworkID uint   `json:"id"`
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	Price     string `json:"price"`
	ImageURL  string `json:"imageUrl"`
}

type Cart struct {
	Items []Item  `json:"items"`
	Total float64 `json:"total"`
}

// Store holds one cart per browser session, keyed by its cart cookie.
// Carts live in process memory only and vanish on restart.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: map[string]*Cart{}}
}

func parsePrice(raw string) float64 {
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return price
}

// AddItem appends the artwork unless it is already in the cart.
func (s *Store) AddItem(cartID string, item Item) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.carts[cartID]
	if c == nil {
		c = &Cart{}
		s.carts[cartID] = c
	}

	for _, existing := range c.Items {
		if existing.ArtworkID == item.ArtworkID {
			return s.snapshot(c)
		}
	}

	c.Items = append(c.Items, item)
	c.Total += parsePrice(item.Price)
	return s.snapshot(c)
}

func (s *Store) RemoveItem(cartID string, artworkID uint) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.carts[cartID]
	if c == nil {
		return Cart{Items: []Item{}}
	}

	for i, item := range c.Items {
		if item.ArtworkID == artworkID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.Total -= parsePrice(item.Price)
			break
		}
	}
	return s.snapshot(c)
}

func (s *Store) Clear(cartID string) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, cartID)
	return Cart{Items: []Item{}}
}

func (s *Store) Get(cartID string) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.carts[cartID]
	if c == nil {
		return Cart{Items: []Item{}}
	}
	return s.snapshot(c)
}

// snapshot copies the cart so callers never alias store-owned slices.
// Callers must hold s.mu.
func (s *Store) snapshot(c *Cart) Cart {
	items := make([]Item, len(c.Items))
	copy(items, c.Items)
	return Cart{Items: items, Total: c.Total}
}
