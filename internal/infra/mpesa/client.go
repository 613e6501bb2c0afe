package mpesa

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"gallery-app/config"
)

const sandboxBaseURL = "https://sandbox.safaricom.co.ke"

// Client talks to the Daraja STK-push API. It only initiates pushes;
// confirmation callbacks are handled by the gateway's callback URL.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL: sandboxBaseURL,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

type StkPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
	ErrorMessage        string `json:"errorMessage"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.BaseURL+"/oauth/v1/generate?grant_type=client_credentials", nil)
	if err != nil {
		return "", err
	}

	auth := base64.StdEncoding.EncodeToString(
		[]byte(config.MPESA_CONSUMER_KEY + ":" + config.MPESA_CONSUMER_SECRET))
	req.Header.Set("Authorization", "Basic "+auth)

	res, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	var tok tokenResponse
	if err := json.NewDecoder(res.Body).Decode(&tok); err != nil {
		return "", err
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("mpesa: empty access token (check consumer key/secret)")
	}
	return tok.AccessToken, nil
}

// FormatPhone normalizes a Kenyan MSISDN to the 254... form Daraja expects.
func FormatPhone(phone string) string {
	if strings.HasPrefix(phone, "254") {
		return phone
	}
	if strings.HasPrefix(phone, "0") {
		return "254" + phone[1:]
	}
	return phone
}

// STKPush initiates a payment prompt on the customer's phone.
// Amount is floored to whole shillings.
func (c *Client) STKPush(ctx context.Context, phone string, amount float64) (*StkPushResponse, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	timestamp := time.Now().Format("20060102150405")
	password := base64.StdEncoding.EncodeToString(
		[]byte(config.MPESA_SHORTCODE + config.MPESA_PASSKEY + timestamp))

	msisdn := FormatPhone(phone)
	payload := map[string]interface{}{
		"BusinessShortCode": config.MPESA_SHORTCODE,
		"Password":          password,
		"Timestamp":         timestamp,
		"TransactionType":   "CustomerPayBillOnline",
		"Amount":            int(amount),
		"PartyA":            msisdn,
		"PartyB":            config.MPESA_SHORTCODE,
		"PhoneNumber":       msisdn,
		"CallBackURL":       config.MPESA_CALLBACK_URL,
		"AccountReference":  "Gallery",
		"TransactionDesc":   "Art Purchase",
	}

	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/mpesa/stkpush/v1/processrequest", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var out StkPushResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK || out.ResponseCode != "0" {
		msg := out.ErrorMessage
		if msg == "" {
			msg = out.ResponseDescription
		}
		return &out, fmt.Errorf("mpesa: stk push rejected: %s", msg)
	}
	return &out, nil
}
