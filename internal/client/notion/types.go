package notion

import "fmt"

type Parent struct {
	DatabaseID string `json:"database_id"`
}

type TextContent struct {
	Content string `json:"content"`
}

type RichText struct {
	Text TextContent `json:"text"`
}

type SelectOption struct {
	Name string `json:"name"`
}

type Date struct {
	Start string `json:"start"`
}

// Property is the union of Notion page property payloads this service
// writes. Exactly one member is set per property.
type Property struct {
	Title    []RichText    `json:"title,omitempty"`
	RichText []RichText    `json:"rich_text,omitempty"`
	Select   *SelectOption `json:"select,omitempty"`
	Date     *Date         `json:"date,omitempty"`
}

type Properties map[string]Property

type CreatePageRequest struct {
	Parent     Parent     `json:"parent"`
	Properties Properties `json:"properties"`
}

type CreatePageResponse struct {
	Object string `json:"object"`
	Id     string `json:"id"`
}

type APIError struct {
	Object  string `json:"object"`
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RemoteError surfaces a failed push with its underlying cause. StatusCode
// is 0 when the request never produced an HTTP response.
type RemoteError struct {
	StatusCode int
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("notion sync failed (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("notion sync failed: %v", e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
