// Package recipe provides the application layer for the recipe card tools
// This implements the use cases defined in the inbound ports
package recipe

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alchemorsel/personal-chef/internal/domain/nutrition"
	"github.com/alchemorsel/personal-chef/internal/domain/recipe"
	"github.com/alchemorsel/personal-chef/internal/domain/shopping"
	"github.com/alchemorsel/personal-chef/internal/domain/units"
	"github.com/alchemorsel/personal-chef/internal/ports/inbound"
	"github.com/alchemorsel/personal-chef/internal/ports/outbound"
	"github.com/alchemorsel/personal-chef/pkg/errors"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Tool names as exposed to the chat client
const (
	ToolRecipe            = "recipe"
	ToolScaleRecipe       = "scale_recipe"
	ToolShoppingList      = "generate_shopping_list"
	ToolSendShoppingEmail = "send_shopping_list_email"
)

const defaultLookupConcurrency = 8

// Metrics receives tool and lookup outcomes
type Metrics interface {
	ToolInvoked(tool, outcome string)
	NutritionLookup(outcome string)
	ShoppingListBuilt(items int)
}

// Outcome values passed to Metrics
const (
	outcomeSuccess = "success"
	outcomeError   = "error"
	outcomeEmpty   = "empty"
)

type noopMetrics struct{}

func (noopMetrics) ToolInvoked(string, string) {}
func (noopMetrics) NutritionLookup(string)     {}
func (noopMetrics) ShoppingListBuilt(int)      {}

// Options tunes the service
type Options struct {
	// LookupConcurrency bounds parallel nutrition lookups per recipe
	LookupConcurrency int
	// DailyEmailLimit caps emails per recipient per UTC day; 0 disables it
	DailyEmailLimit int
}

// Service implements the recipe card use cases
type Service struct {
	nutrition outbound.NutritionLookup
	email     outbound.EmailSender
	cache     outbound.CacheRepository
	validate  *validator.Validate
	metrics   Metrics
	logger    *zap.Logger
	opts      Options
	now       func() time.Time
}

var _ inbound.ChefService = (*Service)(nil)

// NewService creates a new recipe card service. email and cache may be
// nil: without a sender the email tool reports that it is not configured,
// without a cache the daily email limit is not enforced.
func NewService(
	lookup outbound.NutritionLookup,
	email outbound.EmailSender,
	cache outbound.CacheRepository,
	metrics Metrics,
	opts Options,
	logger *zap.Logger,
) *Service {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if opts.LookupConcurrency < 1 {
		opts.LookupConcurrency = defaultLookupConcurrency
	}

	return &Service{
		nutrition: lookup,
		email:     email,
		cache:     cache,
		validate:  NewValidator(),
		metrics:   metrics,
		logger:    logger.Named("chef-service"),
		opts:      opts,
		now:       time.Now,
	}
}

// NewValidator returns a validator that also understands the "category"
// tag for ingredient store categories.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return recipe.Category(fl.Field().String()).Valid()
	})
	return v
}

// PresentRecipe enriches a generated recipe with nutrition
func (s *Service) PresentRecipe(ctx context.Context, cmd inbound.PresentRecipeCommand) (*inbound.ToolResult, error) {
	s.logger.Info("Presenting recipe",
		zap.String("name", cmd.Name),
		zap.Int("servings", cmd.Servings),
		zap.Int("ingredients", len(cmd.Ingredients)),
	)

	if err := s.validate.Struct(cmd); err != nil {
		return s.toolError(ToolRecipe, "Error generating recipe", errors.FromValidator(err))
	}

	r := recipeFromCommand(cmd)
	if err := r.Validate(); err != nil {
		return s.toolError(ToolRecipe, "Error generating recipe", domainError(err))
	}
	r.AssignIngredientIDs()

	if err := s.lookupNutrition(ctx, r.Ingredients); err != nil {
		return s.toolError(ToolRecipe, "Error generating recipe", errors.Wrap(err, "nutrition lookup aborted"))
	}

	total := nutrition.SumIngredients(r.Ingredients)
	perServing := nutrition.PerServing(total, r.Servings)
	breakdown := nutrition.Breakdown(r.Ingredients, total)

	summary := inbound.RecipeSummary{
		Name:                r.Name,
		Description:         r.Description,
		Cuisine:             r.Cuisine,
		TotalTimeMinutes:    r.TotalTimeMinutes(),
		TotalTime:           units.FormatTotalTime(r.PrepTimeMinutes, r.CookTimeMinutes),
		Servings:            r.Servings,
		Difficulty:          r.Difficulty,
		NutritionPerServing: perServing,
		IngredientCount:     len(r.Ingredients),
		Tags:                r.Tags,
		DietaryInfo:         r.DietaryInfo,
	}

	result := inbound.TextResult(
		fmt.Sprintf("%s: %s. %d servings, %d minutes total. %d calories per serving.",
			r.Name, r.Description, r.Servings, r.TotalTimeMinutes(), perServing.Calories),
		summary,
	)
	result.Meta = inbound.RecipeMeta{
		Recipe:              r,
		NutritionTotal:      total,
		NutritionPerServing: perServing,
		NutritionBreakdown:  breakdown,
		DailyValues:         nutrition.DailyValues(perServing),
	}

	s.metrics.ToolInvoked(ToolRecipe, outcomeSuccess)
	s.logger.Info("Recipe presented",
		zap.String("name", r.Name),
		zap.Int("calories_per_serving", perServing.Calories),
	)

	return result, nil
}

// ScaleRecipe rescales ingredients for another serving count and
// optionally renders them in another unit system
func (s *Service) ScaleRecipe(ctx context.Context, cmd inbound.ScaleRecipeCommand) (*inbound.ScaledRecipe, error) {
	if err := s.validate.Struct(cmd); err != nil {
		s.metrics.ToolInvoked(ToolScaleRecipe, outcomeError)
		return nil, errors.FromValidator(err)
	}
	for idx, ing := range cmd.Ingredients {
		if err := ing.Validate(); err != nil {
			s.metrics.ToolInvoked(ToolScaleRecipe, outcomeError)
			return nil, domainError(fmt.Errorf("ingredient %d: %w", idx, err))
		}
	}

	var system units.System
	if cmd.UnitSystem != "" {
		parsed, err := units.ParseSystem(cmd.UnitSystem)
		if err != nil {
			s.metrics.ToolInvoked(ToolScaleRecipe, outcomeError)
			return nil, errors.NewValidationError(err.Error()).WithMetadata("field", "unit_system")
		}
		system = parsed
	}

	scaled := make([]inbound.ScaledIngredient, len(cmd.Ingredients))
	for idx, ing := range cmd.Ingredients {
		id := ing.ID
		if id == "" {
			id = recipe.IngredientID(idx, ing.EnglishName)
		}
		sc := ing.Scaled(cmd.OriginalServings, cmd.DesiredServings)
		scaled[idx] = inbound.ScaledIngredient{
			ID:       id,
			Name:     sc.Name(),
			Quantity: sc.Quantity,
			Unit:     sc.Unit,
			Display:  units.FormatMeasurement(sc.Quantity, sc.Unit, system, ing.Unit),
			Category: sc.Category,
			Notes:    sc.Notes,
		}
	}

	total := nutrition.SumIngredients(cmd.Ingredients)
	breakdown := cmd.Breakdown
	if len(breakdown) == 0 {
		breakdown = nutrition.Breakdown(cmd.Ingredients, total)
	}

	s.metrics.ToolInvoked(ToolScaleRecipe, outcomeSuccess)
	s.logger.Debug("Recipe scaled",
		zap.Int("original_servings", cmd.OriginalServings),
		zap.Int("desired_servings", cmd.DesiredServings),
		zap.String("unit_system", cmd.UnitSystem),
	)

	return &inbound.ScaledRecipe{
		Servings:            cmd.DesiredServings,
		ScaleFactor:         units.ScaleFactor(cmd.OriginalServings, cmd.DesiredServings),
		UnitSystem:          system,
		Ingredients:         scaled,
		NutritionPerServing: nutrition.PerServing(total, cmd.OriginalServings),
		NutritionBreakdown:  nutrition.ScaleBreakdown(breakdown, cmd.OriginalServings, cmd.DesiredServings),
	}, nil
}

// GenerateShoppingList groups the recipe ingredients by store section
func (s *Service) GenerateShoppingList(ctx context.Context, cmd inbound.ShoppingListCommand) (*inbound.ToolResult, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return s.toolError(ToolShoppingList, "Error generating shopping list", errors.FromValidator(err))
	}

	ingredients := make([]recipe.Ingredient, len(cmd.Ingredients))
	for idx, in := range cmd.Ingredients {
		ingredients[idx] = recipe.Ingredient{
			ID:          in.ID,
			EnglishName: in.EnglishName,
			DisplayName: in.DisplayName,
			Quantity:    in.Quantity,
			Unit:        in.Unit,
			Category:    in.Category,
		}
	}

	list, err := shopping.Build(cmd.RecipeName, cmd.OriginalServings, cmd.DesiredServings, ingredients)
	if err != nil {
		return s.toolError(ToolShoppingList, "Error generating shopping list", domainError(err))
	}

	s.metrics.ToolInvoked(ToolShoppingList, outcomeSuccess)
	s.metrics.ShoppingListBuilt(list.TotalItems)
	s.logger.Info("Shopping list generated",
		zap.String("recipe", list.RecipeName),
		zap.Int("items", list.TotalItems),
		zap.Int("sections", len(list.Sections)),
	)

	return inbound.TextResult(
		fmt.Sprintf("Shopping list for %s (%d servings): %d items across %d store sections.",
			list.RecipeName, list.Servings, list.TotalItems, len(list.Sections)),
		list,
	), nil
}

// SendShoppingList emails a shopping list as rendered on the card
func (s *Service) SendShoppingList(ctx context.Context, cmd inbound.SendShoppingListCommand) (*inbound.ToolResult, error) {
	if s.email == nil {
		s.metrics.ToolInvoked(ToolSendShoppingEmail, outcomeError)
		return inbound.ErrorResult("Email service not configured."), errors.NewServiceUnavailableError("email")
	}

	if err := s.validate.Struct(cmd); err != nil {
		return s.toolError(ToolSendShoppingEmail, "Error sending email", errors.FromValidator(err))
	}

	quotaKey, appErr := s.reserveEmail(ctx, cmd.Email)
	if appErr != nil {
		return s.toolError(ToolSendShoppingEmail, "Error sending email", appErr)
	}

	sections := sectionsFromCommand(cmd.Sections)
	msg := outbound.EmailMessage{
		To:       cmd.Email,
		Subject:  shopping.Subject(cmd.RecipeName),
		TextBody: shopping.RenderPlainText(cmd.RecipeName, cmd.Servings, sections),
	}
	html, err := shopping.RenderHTML(cmd.RecipeName, cmd.Servings, sections)
	if err != nil {
		s.logger.Warn("Sending shopping list without HTML body", zap.Error(err))
	} else {
		msg.HTMLBody = html
	}

	if err := s.email.Send(ctx, msg); err != nil {
		s.releaseEmail(ctx, quotaKey)
		s.metrics.ToolInvoked(ToolSendShoppingEmail, outcomeError)
		s.logger.Error("Failed to send shopping list", zap.String("email", cmd.Email), zap.Error(err))
		return inbound.ErrorResult("Failed to send email: " + err.Error()), errors.NewExternalServiceError("email", err)
	}

	s.metrics.ToolInvoked(ToolSendShoppingEmail, outcomeSuccess)
	s.logger.Info("Shopping list sent", zap.String("email", cmd.Email), zap.String("recipe", cmd.RecipeName))

	return inbound.TextResult(
		"Shopping list sent to "+cmd.Email,
		inbound.EmailReceipt{Success: true, Email: cmd.Email},
	), nil
}

// lookupNutrition fills in the nutrition of every ingredient. Lookups run
// concurrently; a failed lookup leaves that ingredient empty. Only context
// cancellation aborts the whole operation.
func (s *Service) lookupNutrition(ctx context.Context, ingredients []recipe.Ingredient) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.LookupConcurrency)

	for idx := range ingredients {
		ing := &ingredients[idx]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			record, err := s.nutrition.Lookup(gctx, outbound.NutritionQuery{
				Name:     ing.EnglishName,
				Quantity: ing.Quantity,
				Unit:     ing.Unit,
			})
			switch {
			case err != nil:
				s.metrics.NutritionLookup(outcomeError)
				s.logger.Warn("Nutrition lookup failed",
					zap.String("ingredient", ing.EnglishName),
					zap.Error(err),
				)
				ing.Nutrition = nutrition.Empty()
			case record.IsEmpty():
				s.metrics.NutritionLookup(outcomeEmpty)
				ing.Nutrition = record
			default:
				s.metrics.NutritionLookup(outcomeSuccess)
				ing.Nutrition = record
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// reserveEmail counts the email against the recipient's daily limit and
// returns the counter key to release if the send fails. An empty key means
// nothing was counted. Counter failures are logged and do not block sending.
func (s *Service) reserveEmail(ctx context.Context, address string) (string, *errors.AppError) {
	if s.cache == nil || s.opts.DailyEmailLimit <= 0 {
		return "", nil
	}

	key := fmt.Sprintf("email:sent:%s:%s", strings.ToLower(address), s.now().UTC().Format("20060102"))
	count, err := s.cache.Increment(ctx, key)
	if err != nil {
		s.logger.Warn("Email quota check failed", zap.String("key", key), zap.Error(err))
		return "", nil
	}
	if count > int64(s.opts.DailyEmailLimit) {
		s.releaseEmail(ctx, key)
		return "", errors.NewQuotaExceededError("daily email", s.opts.DailyEmailLimit)
	}
	return key, nil
}

// releaseEmail gives back a reserved slot
func (s *Service) releaseEmail(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if _, err := s.cache.Decrement(context.WithoutCancel(ctx), key); err != nil {
		s.logger.Warn("Email quota release failed", zap.String("key", key), zap.Error(err))
	}
}

// toolError records a failed tool call and returns the error result the
// chat client shows alongside the application error.
func (s *Service) toolError(tool, prefix string, appErr *errors.AppError) (*inbound.ToolResult, error) {
	s.metrics.ToolInvoked(tool, outcomeError)
	s.logger.Warn("Tool call failed",
		zap.String("tool", tool),
		zap.String("code", string(appErr.Code)),
		zap.Error(appErr),
	)

	detail := appErr.Details
	if detail == "" {
		detail = appErr.Message
	}
	return inbound.ErrorResult(prefix + ": " + detail), appErr
}

func recipeFromCommand(cmd inbound.PresentRecipeCommand) *recipe.Recipe {
	ingredients := make([]recipe.Ingredient, len(cmd.Ingredients))
	for idx, in := range cmd.Ingredients {
		ingredients[idx] = recipe.Ingredient{
			EnglishName: in.EnglishName,
			DisplayName: in.DisplayName,
			Quantity:    in.Quantity,
			Unit:        in.Unit,
			Category:    in.Category,
			Notes:       in.Notes,
		}
	}

	return &recipe.Recipe{
		Name:            cmd.Name,
		Description:     cmd.Description,
		Cuisine:         cmd.Cuisine,
		Servings:        cmd.Servings,
		PrepTimeMinutes: cmd.PrepTimeMinutes,
		CookTimeMinutes: cmd.CookTimeMinutes,
		Difficulty:      cmd.Difficulty,
		Ingredients:     ingredients,
		Instructions:    cmd.Instructions,
		Tags:            cmd.Tags,
		DietaryInfo:     cmd.DietaryInfo,
		ChefTips:        cmd.ChefTips,
		Substitutions:   cmd.Substitutions,
	}
}

func sectionsFromCommand(in []inbound.EmailSection) []shopping.Section {
	out := make([]shopping.Section, len(in))
	for i, sec := range in {
		items := make([]shopping.Item, len(sec.Items))
		for j, item := range sec.Items {
			items[j] = shopping.Item{Display: item.Display, Checked: item.Checked}
		}
		out[i] = shopping.Section{Name: sec.Name, Emoji: sec.Emoji, Items: items}
	}
	return out
}
