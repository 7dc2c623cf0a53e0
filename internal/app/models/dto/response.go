package dto

// MessageResponse is returned by deletes and by APIError rendering.
type MessageResponse struct {
	Message string `json:"message" example:"User deleted"`
}

// Route is one entry of the sitemap.
type Route struct {
	Method string `json:"method" example:"GET"`
	Path   string `json:"path" example:"/users"`
}

// SitemapResponse lists every registered route.
type SitemapResponse struct {
	Routes []Route `json:"routes"`
}

// HealthResponse reports store reachability.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
