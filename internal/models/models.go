// Package models contains the core data structures for the application.
package models

import "time"

// Known recipe providers. Anything else is treated as a free-text custom
// provider; the wire representation stays a plain string either way.
const (
	ProviderHasegawaAkari = "長谷川あかり"
	ProviderMomo          = "もも"
)

// KnownProviders lists the distinguished provider values in display order.
var KnownProviders = []string{ProviderHasegawaAkari, ProviderMomo}

// IsKnownProvider reports whether p is one of the distinguished providers.
func IsKnownProvider(p string) bool {
	for _, known := range KnownProviders {
		if p == known {
			return true
		}
	}
	return false
}

// Category is a single entry of the category taxonomy.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryRef is the embedded category view inside a recipe aggregate.
type CategoryRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RecipeAggregate is a recipe joined with its owned images and its category
// associations, the unit returned by every recipe read and write.
type RecipeAggregate struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	URL            string        `json:"url,omitempty"`
	Provider       string        `json:"provider,omitempty"`
	Categories     []CategoryRef `json:"categories"`
	ImageURLs      []string      `json:"image_urls"`
	IsTodayMenu    bool          `json:"is_today_menu"`
	TodayMenuSetAt *time.Time    `json:"today_menu_set_at"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// TodayMenu is the response of the today's-menu toggle endpoints.
type TodayMenu struct {
	ID             string     `json:"id"`
	IsTodayMenu    bool       `json:"is_today_menu"`
	TodayMenuSetAt *time.Time `json:"today_menu_set_at"`
}

// CategoryPayload is the request body for category create and rename.
type CategoryPayload struct {
	Name string `json:"name"`
}

// RecipeCreatePayload is the request body for recipe creation.
type RecipeCreatePayload struct {
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Provider    string   `json:"provider"`
	ImageURLs   []string `json:"imageUrls"`
	CategoryIDs []int64  `json:"categoryIds"`
}

// RecipeUpdatePayload is the request body for recipe update. Unlike creation,
// the URL is optional here.
type RecipeUpdatePayload struct {
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Provider    string   `json:"provider"`
	ImageURLs   []string `json:"imageUrls"`
	CategoryIDs []int64  `json:"categoryIds"`
}

// UploadResult is the response of the image upload endpoint.
type UploadResult struct {
	URL string `json:"url"`
}

// Info represents general information about the service.
type Info struct {
	ServiceName        string    `json:"service_name"`
	Version            string    `json:"version"`
	UptimeSince        time.Time `json:"uptime_since"`
	DatabaseConfigured bool      `json:"database_configured"`
	StorageBackend     string    `json:"storage_backend,omitempty"`
	KnownProviders     []string  `json:"known_providers"`
}
