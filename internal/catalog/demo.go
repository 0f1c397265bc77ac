package catalog

import "fmt"

var _demoFlowers = []string{
	"roses", "peonies", "tulips", "ranunculus", "hydrangeas", "lilies", "orchids",
	"chrysanthemums", "eustomas", "freesias", "alstroemerias", "gerberas", "irises",
}

// Demo returns a built-in catalog of 13 bouquets.
func Demo() *Catalog {
	c := &Catalog{Items: make([]Entry, 0, len(_demoFlowers))}
	for i, flower := range _demoFlowers {
		c.Items = append(c.Items, Entry{
			Title:       fmt.Sprintf("Bouquet #%d", i+1),
			Description: fmt.Sprintf("A seasonal arrangement of %s.", flower),
		})
	}

	return c
}
