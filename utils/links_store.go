package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Govind-619/ShopLink/config"
	"github.com/Govind-619/ShopLink/models"
)

// DefaultLinks returns the starter document for a shop with no saved
// links yet.
func DefaultLinks(shopName string) models.ShopLinks {
	return models.ShopLinks{
		DisplayName: Title(shopName),
		HeaderText:  "Welcome to our store!",
		Address:     "Not provided yet",
		MapURL:      "https://maps.google.com",
	}
}

func linksPath(shopName string) string {
	return filepath.Join(config.AppConfig.ShopDataDir, strings.ToLower(shopName)+".json")
}

// LoadLinks reads a shop's links document, creating it with defaults on
// first access. Keys added to the document since the file was written
// are filled from the defaults and the merge is persisted. Only keys
// genuinely absent from the file are filled; a field an admin cleared
// stays cleared.
func LoadLinks(shopName string) (models.ShopLinks, error) {
	defaults := DefaultLinks(shopName)

	data, err := os.ReadFile(linksPath(shopName))
	if os.IsNotExist(err) {
		if saveErr := SaveLinks(shopName, defaults); saveErr != nil {
			return defaults, saveErr
		}
		return defaults, nil
	}
	if err != nil {
		return defaults, err
	}

	var links models.ShopLinks
	if err := json.Unmarshal(data, &links); err != nil {
		return defaults, fmt.Errorf("corrupt links file for shop %s: %w", shopName, err)
	}
	var present map[string]json.RawMessage
	if err := json.Unmarshal(data, &present); err != nil {
		return defaults, fmt.Errorf("corrupt links file for shop %s: %w", shopName, err)
	}

	merged := false
	fill := func(key string, dst *string, def string) {
		if _, ok := present[key]; !ok {
			*dst = def
			merged = true
		}
	}
	fill("display_name", &links.DisplayName, defaults.DisplayName)
	fill("header_text", &links.HeaderText, defaults.HeaderText)
	fill("address", &links.Address, defaults.Address)
	fill("map_url", &links.MapURL, defaults.MapURL)
	if merged {
		if err := SaveLinks(shopName, links); err != nil {
			return links, err
		}
	}
	return links, nil
}

// SaveLinks writes a shop's links document
func SaveLinks(shopName string, links models.ShopLinks) error {
	if err := os.MkdirAll(config.AppConfig.ShopDataDir, 0755); err != nil {
		return fmt.Errorf("failed to create shop data directory: %v", err)
	}
	data, err := json.MarshalIndent(links, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(linksPath(shopName), data, 0644)
}
