package catalog

import (
	"fmt"
	"sort"

	"solmar/models"

	"github.com/spf13/viper"
)

// CatalogService exposes the immutable service catalog.
type CatalogService interface {
	GetAvailableServices() ([]models.Service, error)
	GetServiceByID(id string) (*models.Service, error)
}

// DefaultCatalogService implements CatalogService over the static catalog
// file loaded at startup.
type DefaultCatalogService struct {
	services map[string]models.Service
}

// LoadCatalog reads the catalog file and returns the catalog service.
func LoadCatalog(path string) (*DefaultCatalogService, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read service catalog %s: %w", path, err)
	}

	var entries []models.Service
	if err := v.UnmarshalKey("services", &entries); err != nil {
		return nil, fmt.Errorf("failed to parse service catalog: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("service catalog %s contains no services", path)
	}

	svcMap := make(map[string]models.Service, len(entries))
	for _, s := range entries {
		if s.ID == "" || s.BasePrice < 0 {
			return nil, fmt.Errorf("invalid catalog entry %q", s.ID)
		}
		if _, exists := svcMap[s.ID]; exists {
			return nil, fmt.Errorf("duplicate catalog entry %q", s.ID)
		}
		svcMap[s.ID] = s
	}
	return &DefaultCatalogService{services: svcMap}, nil
}

// GetAvailableServices returns every catalog entry sorted by name.
func (c *DefaultCatalogService) GetAvailableServices() ([]models.Service, error) {
	out := make([]models.Service, 0, len(c.services))
	for _, s := range c.services {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// GetServiceByID returns a single catalog entry.
func (c *DefaultCatalogService) GetServiceByID(id string) (*models.Service, error) {
	s, ok := c.services[id]
	if !ok {
		return nil, fmt.Errorf("unknown service: %s", id)
	}
	return &s, nil
}
