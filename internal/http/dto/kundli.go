package dto

import (
	"encoding/json"
	"math"

	"kundli.app/kundli/internal/astro"
)

type KundliRequest struct {
	Date      string   `json:"date" binding:"required,datetime=2006-01-02"`
	Time      string   `json:"time" binding:"required,min=4,max=8"`
	Lat       *float64 `json:"lat" binding:"required,min=-90,max=90"`
	Lon       *float64 `json:"lon" binding:"required,min=-180,max=180"`
	TZ        *float64 `json:"tz" binding:"required,min=-12,max=14"`
	ChartType string   `json:"chart_type" binding:"omitempty,oneof=regular d9"`
}

type PlanetPlacement struct {
	Name    string   `json:"name"`
	Deg     float64  `json:"deg"`
	Sign    string   `json:"sign"`
	House   int      `json:"house"`
	Status  []string `json:"status"`
	Dignity string   `json:"dignity"`
}

type HouseStrength struct {
	Strength float64 `json:"strength"`
	Color    string  `json:"color"`
}

type AspectEntry struct {
	Planet    string `json:"planet"`
	FromHouse int    `json:"from_house"`
	ToHouse   int    `json:"to_house"`
	Label     string `json:"label"`
	Nature    string `json:"nature"`
}

type KundliResponse struct {
	SignPlanets       map[string][]PlanetPlacement `json:"sign_planets"`
	Positions         map[string]float64           `json:"positions"`
	AscSign           string                       `json:"asc_sign"`
	HouseDescriptions map[int]string               `json:"house_descriptions"`
	HouseStrengths    map[int]HouseStrength        `json:"house_strengths"`
	Aspects           []AspectEntry                `json:"aspects"`
	Dataset           json.RawMessage              `json:"dataset"`
}

var houseDescriptions = map[int]string{
	1:  "Self, body, appearance, personality",
	2:  "Wealth, family, speech, possessions",
	3:  "Siblings, courage, communication",
	4:  "Mother, home, property, emotions",
	5:  "Children, creativity, education",
	6:  "Enemies, debts, health, service",
	7:  "Marriage, spouse, partnerships",
	8:  "Death, transformation, occult",
	9:  "Luck, dharma, higher learning",
	10: "Career, status, public life",
	11: "Gains, friends, aspirations",
	12: "Losses, expenses, spirituality",
}

var bucketColors = map[astro.StrengthBucket]string{
	astro.BucketStrong:  "#90EE90",
	astro.BucketWeak:    "#FFB6C1",
	astro.BucketNeutral: "#FFD700",
}

func ToKundliResponse(chart *astro.Chart, data json.RawMessage) *KundliResponse {
	resp := &KundliResponse{
		SignPlanets:       make(map[string][]PlanetPlacement, 12),
		Positions:         make(map[string]float64, len(chart.Placements)),
		AscSign:           chart.Ascendant.String(),
		HouseDescriptions: houseDescriptions,
		HouseStrengths:    make(map[int]HouseStrength, 12),
		Aspects:           make([]AspectEntry, 0, len(chart.Aspects)),
		Dataset:           data,
	}

	// Every sign is present even when empty, matching the chart renderer's
	// expectation of a complete sign map.
	for s := astro.Aries; s <= astro.Pisces; s++ {
		resp.SignPlanets[s.String()] = []PlanetPlacement{}
	}

	for _, pl := range chart.Placements {
		sign := pl.Sign.String()
		resp.SignPlanets[sign] = append(resp.SignPlanets[sign], PlanetPlacement{
			Name:    pl.Body.Code(),
			Deg:     math.Round(pl.Degree*10) / 10,
			Sign:    sign,
			House:   pl.House,
			Status:  pl.Status.Tags(),
			Dignity: string(pl.Dignity),
		})
		resp.Positions[pl.Body.Code()] = pl.Longitude
	}

	for _, hs := range chart.Strengths {
		resp.HouseStrengths[hs.House] = HouseStrength{
			Strength: math.Round(hs.Average*100) / 100,
			Color:    bucketColors[hs.Bucket],
		}
	}

	for _, a := range chart.Aspects {
		resp.Aspects = append(resp.Aspects, AspectEntry{
			Planet:    a.Body.Code(),
			FromHouse: a.FromHouse,
			ToHouse:   a.ToHouse,
			Label:     a.Label,
			Nature:    string(a.Nature),
		})
	}

	return resp
}
