package imgbb

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultEndpoint  = "https://api.imgbb.com/1/upload"
	defaultUserAgent = "imgbb-go/1.0.0"
	defaultTimeout   = 30 * time.Second
)

// Client talks to the ImgBB API. It holds no per-call state and is safe for
// concurrent use.
type Client struct {
	apiKey     string
	endpoint   string
	userAgent  string
	httpClient *http.Client
	logger     *log.Logger
}

// ClientOptions configures a Client. APIKey is required; every other field
// has a sensible default. A custom HTTPClient takes precedence over Timeout.
type ClientOptions struct {
	APIKey     string
	Endpoint   string
	Timeout    time.Duration
	UserAgent  string
	HTTPClient *http.Client
	Logger     *log.Logger
}

// NewClient creates a new ImgBB client
func NewClient(options *ClientOptions) *Client {
	if options.HTTPClient == nil {
		timeout := options.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		options.HTTPClient = &http.Client{
			Timeout: timeout,
		}
	}

	if options.Endpoint == "" {
		options.Endpoint = defaultEndpoint
	}

	if options.UserAgent == "" {
		options.UserAgent = defaultUserAgent
	}

	if options.Logger == nil {
		options.Logger = log.New(log.Writer(), "[IMGBB] ", log.Flags())
	}

	return &Client{
		apiKey:     options.APIKey,
		endpoint:   options.Endpoint,
		userAgent:  options.UserAgent,
		httpClient: options.HTTPClient,
		logger:     options.Logger,
	}
}

// NewClientWithDefaults creates a new ImgBB client with default options
func NewClientWithDefaults(apiKey string) *Client {
	return NewClient(&ClientOptions{
		APIKey: apiKey,
		HTTPClient: &http.Client{
			Timeout: defaultTimeout,
		},
	})
}

// NewUpload returns an empty Uploader bound to this client
func (c *Client) NewUpload() *Uploader {
	return &Uploader{client: c}
}

// UploadBase64 uploads an already base64-encoded image
func (c *Client) UploadBase64(data string) (*Response, error) {
	return c.NewUpload().Data(data).Upload()
}

// UploadBytes encodes raw image bytes and uploads them
func (c *Client) UploadBytes(data []byte) (*Response, error) {
	return c.NewUpload().Bytes(data).Upload()
}

// UploadFile reads an image from disk, encodes it and uploads it
func (c *Client) UploadFile(path string) (*Response, error) {
	return c.NewUpload().File(path).Upload()
}

// UploadBase64WithExpiration uploads base64 data that the provider removes
// after the given number of seconds
func (c *Client) UploadBase64WithExpiration(data string, seconds uint64) (*Response, error) {
	return c.NewUpload().Data(data).Expiration(seconds).Upload()
}

// UploadBytesWithExpiration uploads raw bytes that the provider removes
// after the given number of seconds
func (c *Client) UploadBytesWithExpiration(data []byte, seconds uint64) (*Response, error) {
	return c.NewUpload().Bytes(data).Expiration(seconds).Upload()
}

// UploadFileWithExpiration uploads a file that the provider removes after
// the given number of seconds
func (c *Client) UploadFileWithExpiration(path string, seconds uint64) (*Response, error) {
	return c.NewUpload().File(path).Expiration(seconds).Upload()
}

// Delete removes a previously uploaded image. The delete URL is the opaque
// URL the provider issued in Data.DeleteURL; a successful delete carries no
// data payload.
func (c *Client) Delete(deleteURL string) error {
	u, err := url.Parse(deleteURL)
	if err != nil {
		return fmt.Errorf("imgbb: parse delete url: %w", err)
	}

	query := u.Query()
	query.Set("key", c.apiKey)
	u.RawQuery = query.Encode()

	req, err := http.NewRequest(http.MethodDelete, u.String(), nil)
	if err != nil {
		return fmt.Errorf("imgbb: build delete request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = redact(err)
		c.logger.Printf("Delete request failed: %v", err)
		return fmt.Errorf("imgbb: send delete request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Printf("Failed to read delete response: %v", err)
		return fmt.Errorf("imgbb: read delete response: %w", err)
	}

	_, err = parseResponse(resp.StatusCode, body)
	return err
}

// submit sends an assembled upload to the provider. The API key and the
// optional expiration travel in the query string, everything else in the
// form body.
func (c *Client) submit(up *Uploader) (*Response, error) {
	query := url.Values{}
	query.Set("key", c.apiKey)
	if up.expiration != nil {
		query.Set("expiration", fmt.Sprintf("%d", *up.expiration))
	}

	form := url.Values{}
	form.Set("image", up.data)
	if up.name != "" {
		form.Set("name", up.name)
	}
	if up.title != "" {
		form.Set("title", up.title)
	}
	if up.album != "" {
		form.Set("album", up.album)
	}

	req, err := http.NewRequest(http.MethodPost, c.endpoint+"?"+query.Encode(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("imgbb: build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = redact(err)
		c.logger.Printf("Upload request failed: %v", err)
		return nil, fmt.Errorf("imgbb: send upload request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Printf("Failed to read upload response: %v", err)
		return nil, fmt.Errorf("imgbb: read upload response: %w", err)
	}

	return parseResponse(resp.StatusCode, body)
}

// parseResponse turns an HTTP status and raw body into a Response or a typed
// error. The error object in the body always wins over the success flag, and
// an unparseable body on a 2xx status is surfaced as an empty success rather
// than a parse failure.
func parseResponse(status int, body []byte) (*Response, error) {
	var response Response
	if err := json.Unmarshal(body, &response); err != nil {
		if status >= 200 && status < 300 {
			return &Response{}, nil
		}
		return nil, &APIError{Message: string(body), Status: status}
	}

	if response.Error != nil {
		return nil, classifyError(response.Error, status)
	}

	if response.Success != nil && !*response.Success {
		return nil, &APIError{Message: "operation failed without a specific error", Status: status}
	}

	return &response, nil
}

// classifyError maps the provider's numeric error code to a typed error. The
// code set is open-ended; anything unrecognized keeps its raw code and
// message in an APIError.
func classifyError(detail *ErrorDetail, status int) error {
	message := detail.Message
	if message == "" {
		message = "Unknown error"
	}

	switch detail.Code {
	case 100:
		return ErrInvalidAPIKey
	case 120:
		return ErrInvalidBase64
	case 400:
		return fmt.Errorf("%w: %s", ErrInvalidParameters, message)
	case 429:
		return ErrRateLimitExceeded
	}

	return &APIError{Message: message, Status: status, Code: detail.Code}
}

// redact strips the request URL from transport errors. The URL carries the
// API key in its query string and must not reach logs or error messages.
func redact(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return fmt.Errorf("%s: %w", uerr.Op, uerr.Err)
	}
	return err
}
