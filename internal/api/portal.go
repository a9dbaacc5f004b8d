package api

import (
	"context"
	"encoding/json"
	"fmt"
)

// Class is one scheduled class in the portal catalog.
type Class struct {
	ID      string `json:"_id"`
	Title   string `json:"title"`
	Subject string `json:"subject"`
	Track   string `json:"track"`
	Mode    string `json:"mode"` // Live or Recorded
	Date    string `json:"date"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Room    string `json:"room"`
	Seats   int    `json:"seats"`
}

// Mentor is one mentor profile.
type Mentor struct {
	ID       string   `json:"_id"`
	Name     string   `json:"name"`
	Subjects []string `json:"subjects"`
	City     string   `json:"city"`
	Rating   float64  `json:"rating"`
	Sessions int      `json:"sessions"`
	Price    int      `json:"price"`
}

// Resource is one study resource (notes, video, worksheet).
type Resource struct {
	ID       string `json:"_id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Level    string `json:"level"`
	Format   string `json:"format"`
	Size     string `json:"size"`
	URL      string `json:"url"`
}

// ListClasses fetches the class schedule.
func (c *Client) ListClasses(ctx context.Context) ([]Class, error) {
	var classes []Class
	if err := c.getList(ctx, "/api/classes", &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

// ListMentors fetches the mentor directory.
func (c *Client) ListMentors(ctx context.Context) ([]Mentor, error) {
	var mentors []Mentor
	if err := c.getList(ctx, "/api/mentors", &mentors); err != nil {
		return nil, err
	}
	return mentors, nil
}

// ListResources fetches the resource catalog.
func (c *Client) ListResources(ctx context.Context) ([]Resource, error) {
	var resources []Resource
	if err := c.getList(ctx, "/api/resources", &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

func (c *Client) getList(ctx context.Context, path string, out any) error {
	data, err := c.getData(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
