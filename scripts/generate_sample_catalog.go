package main

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Generates a sample gzipped catalogue file (JSON lines, one product per
// line) for use with CATALOG_IMPORT_ENABLED=true.

type product struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         int64    `json:"price"`
	OriginalPrice int64    `json:"originalPrice"`
	ImageURL      string   `json:"imageUrl"`
	Category      string   `json:"category"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	InStock       bool     `json:"inStock"`
	Featured      bool     `json:"featured"`
	Colors        []string `json:"colors"`
	Sizes         []string `json:"sizes"`
}

func main() {
	products := []product{
		{ID: 1, Name: "Graphic Oversized T-Shirt", Description: "Relaxed fit cotton tee", Price: 599, OriginalPrice: 999, ImageURL: "https://example.com/img/tee.jpg", Category: "clothing", Rating: 4.5, ReviewCount: 212, InStock: true, Featured: true, Colors: []string{"black", "white"}, Sizes: []string{"S", "M", "L", "XL"}},
		{ID: 2, Name: "Canvas Sneakers", Description: "Low-top everyday sneakers", Price: 1499, OriginalPrice: 1999, ImageURL: "https://example.com/img/sneakers.jpg", Category: "footwear", Rating: 4.2, ReviewCount: 87, InStock: true, Featured: true, Colors: []string{"white"}, Sizes: []string{"7", "8", "9", "10"}},
		{ID: 3, Name: "Printed Tote Bag", Description: "Heavy canvas tote", Price: 399, OriginalPrice: 499, ImageURL: "https://example.com/img/tote.jpg", Category: "accessories", Rating: 4.7, ReviewCount: 45, InStock: true, Featured: false, Colors: []string{"beige"}, Sizes: []string{"onesize"}},
		{ID: 4, Name: "Denim Jacket", Description: "Washed denim trucker jacket", Price: 2299, OriginalPrice: 2999, ImageURL: "https://example.com/img/jacket.jpg", Category: "clothing", Rating: 4.4, ReviewCount: 133, InStock: false, Featured: false, Colors: []string{"blue"}, Sizes: []string{"M", "L", "XL"}},
	}

	dir := "testdata"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatalf("failed to create directory: %v", err)
	}

	path := filepath.Join(dir, "sample_catalog.jsonl.gz")
	file, err := os.Create(path)
	if err != nil {
		log.Fatalf("failed to create file: %v", err)
	}
	defer file.Close()

	gz := gzip.NewWriter(file)
	defer gz.Close()

	enc := json.NewEncoder(gz)
	for _, p := range products {
		if err := enc.Encode(p); err != nil {
			log.Fatalf("failed to encode product %d: %v", p.ID, err)
		}
	}

	fmt.Printf("wrote %d products to %s\n", len(products), path)
}
