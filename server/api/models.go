package api

type BackgroundRequest struct {
	Content string `json:"content"`
}

type BackgroundResponse struct {
	ID string `json:"id"`

	URL    string `json:"url"`
	Prompt string `json:"prompt"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
