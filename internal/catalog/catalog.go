// Package catalog serves the static editorial catalog of shows and podcasts.
// The data ships embedded in the binary and is resolved once at startup.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed data.json
var dataFS embed.FS

// Image is a catalog artwork entry.
type Image struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	ImageHint   string `json:"imageHint"`
}

// Entry is one show or podcast with its artwork resolved.
type Entry struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Genre       string   `json:"genre"`
	Category    string   `json:"category"`
	Guests      []string `json:"guests"`
	Image       Image    `json:"image"`
}

type rawEntry struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Genre       string   `json:"genre"`
	Category    string   `json:"category"`
	Guests      []string `json:"guests"`
	Image       string   `json:"image"`
}

type rawData struct {
	Images   []Image    `json:"images"`
	Shows    []rawEntry `json:"shows"`
	Podcasts []rawEntry `json:"podcasts"`
}

// Catalog holds the resolved show and podcast lists. It is read-only after Load.
type Catalog struct {
	shows    []Entry
	podcasts []Entry
}

// Load parses the embedded seed and joins image references onto entries.
// An entry whose image reference has no matching record gets a deterministic
// placeholder derived from the entry ID, so the catalog never renders broken
// artwork.
func Load() (*Catalog, error) {
	raw, err := dataFS.ReadFile("data.json")
	if err != nil {
		return nil, fmt.Errorf("read catalog seed: %w", err)
	}

	var data rawData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse catalog seed: %w", err)
	}

	images := make(map[string]Image, len(data.Images))
	for _, img := range data.Images {
		images[img.ID] = img
	}

	c := &Catalog{
		shows:    resolve(data.Shows, images),
		podcasts: resolve(data.Podcasts, images),
	}
	return c, nil
}

func resolve(entries []rawEntry, images map[string]Image) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		img, ok := images[e.Image]
		if !ok {
			img = placeholderImage(e.ID)
		}
		guests := e.Guests
		if guests == nil {
			guests = []string{}
		}
		out = append(out, Entry{
			ID:          e.ID,
			Title:       e.Title,
			Description: e.Description,
			Genre:       e.Genre,
			Category:    e.Category,
			Guests:      guests,
			Image:       img,
		})
	}
	return out
}

func placeholderImage(seed string) Image {
	if seed == "" {
		seed = "placeholder"
	}
	return Image{
		ID:       "placeholder-" + seed,
		ImageURL: fmt.Sprintf("https://picsum.photos/seed/%s/600/400", seed),
	}
}

// Shows returns the show list in seed order.
func (c *Catalog) Shows() []Entry {
	return c.shows
}

// Podcasts returns the podcast list in seed order.
func (c *Catalog) Podcasts() []Entry {
	return c.podcasts
}
