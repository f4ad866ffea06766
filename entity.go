package imgbb

// Response is the envelope the provider returns for upload and delete calls.
// Every field is optional on the wire; the provider omits fields depending on
// the image type and account plan.
type Response struct {
	Data    *Data        `json:"data"`
	Success *bool        `json:"success"`
	Status  int          `json:"status"`
	Error   *ErrorDetail `json:"error"`
}

// Data describes an uploaded image. Numeric fields are pointers so an absent
// value is distinguishable from zero.
type Data struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	URLViewer  string `json:"url_viewer"`
	URL        string `json:"url"`
	DisplayURL string `json:"display_url"`
	Width      *int   `json:"width"`
	Height     *int   `json:"height"`
	Size       *int64 `json:"size"`
	Time       *int64 `json:"time"`
	Expiration *int64 `json:"expiration"`
	Image      *Image `json:"image"`
	Thumb      *Image `json:"thumb"`
	Medium     *Image `json:"medium"`
	DeleteURL  string `json:"delete_url"`
}

// Image describes one stored variant of an upload (full size, thumbnail or
// medium).
type Image struct {
	Filename  string `json:"filename"`
	Name      string `json:"name"`
	Mime      string `json:"mime"`
	Extension string `json:"extension"`
	URL       string `json:"url"`
}

// ErrorDetail is the error object embedded in a failed response body.
type ErrorDetail struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
