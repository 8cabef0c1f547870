// Package usda provides a nutrition lookup backed by the USDA FoodData
// Central search API.
package usda

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alchemorsel/personal-chef/internal/domain/recipe"
	"github.com/alchemorsel/personal-chef/internal/ports/outbound"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// FoodData Central nutrient identifiers
const (
	nutrientEnergy  = 1008
	nutrientProtein = 1003
	nutrientCarbs   = 1005
	nutrientFat     = 1004
	nutrientFiber   = 1079
	nutrientSugar   = 2000
	nutrientSodium  = 1093
)

// Client implements NutritionLookup using the FoodData Central API
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
	tracer  trace.Tracer
}

var _ outbound.NutritionLookup = (*Client)(nil)

// NewClient creates a new USDA client
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *Client {
	logger.Info("USDA nutrition client initialized",
		zap.String("base_url", baseURL),
		zap.Duration("timeout", timeout))

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger.Named("usda-client"),
		tracer: otel.Tracer("personal-chef"),
	}
}

// FoodData Central API structures
type searchResponse struct {
	Foods     []food `json:"foods"`
	TotalHits int    `json:"totalHits"`
}

type food struct {
	FdcID         int            `json:"fdcId"`
	Description   string         `json:"description"`
	FoodNutrients []foodNutrient `json:"foodNutrients"`
}

type foodNutrient struct {
	NutrientID   int     `json:"nutrientId"`
	NutrientName string  `json:"nutrientName"`
	UnitName     string  `json:"unitName"`
	Value        float64 `json:"value"`
}

// per100g holds raw nutrient values for 100 g of a food
type per100g struct {
	calories, protein, carbs, fat, fiber, sugar, sodium float64
}

// Lookup searches for the ingredient and scales the best match to the
// requested amount. An API error status or an empty search result yields
// an empty record; only transport and decoding failures are returned.
func (c *Client) Lookup(ctx context.Context, q outbound.NutritionQuery) (recipe.NutritionRecord, error) {
	ctx, span := c.tracer.Start(ctx, "usda.Lookup", trace.WithAttributes(
		attribute.String("ingredient", q.Name),
		attribute.String("unit", q.Unit),
	))
	defer span.End()

	query := strings.TrimSpace(fmt.Sprintf("%s %s %s", formatNumber(q.Quantity), q.Unit, q.Name))
	params := url.Values{}
	params.Set("query", query)
	params.Set("pageSize", "1")
	params.Set("api_key", c.apiKey)
	endpoint := c.baseURL + "/foods/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return recipe.NutritionRecord{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return recipe.NutritionRecord{}, fmt.Errorf("failed to query USDA: %w", err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.logger.Warn("USDA API error",
			zap.String("ingredient", q.Name),
			zap.Int("status", resp.StatusCode))
		return recipe.NutritionRecord{}, nil
	}

	var data searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		span.RecordError(err)
		return recipe.NutritionRecord{}, fmt.Errorf("failed to decode USDA response: %w", err)
	}

	if len(data.Foods) == 0 {
		c.logger.Warn("No USDA data found", zap.String("ingredient", q.Name))
		return recipe.NutritionRecord{}, nil
	}

	match := data.Foods[0]
	span.SetAttributes(attribute.Int("usda.fdc_id", match.FdcID))

	return scale(extractNutrients(match.FoodNutrients), GramWeight(q.Quantity, q.Unit)), nil
}

func extractNutrients(nutrients []foodNutrient) per100g {
	var out per100g
	for _, n := range nutrients {
		switch n.NutrientID {
		case nutrientEnergy:
			out.calories = n.Value
		case nutrientProtein:
			out.protein = n.Value
		case nutrientCarbs:
			out.carbs = n.Value
		case nutrientFat:
			out.fat = n.Value
		case nutrientFiber:
			out.fiber = n.Value
		case nutrientSugar:
			out.sugar = n.Value
		case nutrientSodium:
			out.sodium = n.Value
		}
	}
	return out
}

func scale(n per100g, grams float64) recipe.NutritionRecord {
	factor := grams / 100
	return recipe.NutritionRecord{
		Calories: int(math.Round(n.calories * factor)),
		ProteinG: recipe.RoundGrams(n.protein * factor),
		CarbsG:   recipe.RoundGrams(n.carbs * factor),
		FatG:     recipe.RoundGrams(n.fat * factor),
		FiberG:   recipe.RoundGrams(n.fiber * factor),
		SugarG:   recipe.RoundGrams(n.sugar * factor),
		SodiumMg: int(math.Round(n.sodium * factor)),
	}
}

func formatNumber(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
