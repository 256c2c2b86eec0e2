package handlers

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/api/middleware"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/errors"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/models"
	service "github.com/aaravmahajanofficial/savory-restaurant/internal/services"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/utils"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/utils/response"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/validation"
	"github.com/go-playground/validator/v10"
)

type MenuHandler struct {
	menuService service.MenuService
	validator   *validator.Validate
}

func NewMenuHandler(menuService service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService, validator: validation.New()}
}

// GetMenu godoc
//	@Summary		Browse the menu
//	@Description	Lists menu sections in menu order. Every filter is optional and they combine; dietary tags must all match.
//	@Tags			Menu
//	@Produce		json
//	@Param			category	query		string					false	"Category id or all"
//	@Param			search		query		string					false	"Matches name or description, case-insensitive"
//	@Param			minPrice	query		number					false	"Inclusive lower bound"
//	@Param			maxPrice	query		number					false	"Inclusive upper bound"
//	@Param			dietary		query		[]string				false	"vegetarian, vegan, gluten-free or spicy"	collectionFormat(csv)
//	@Param			featured	query		bool					false	"Only featured items"
//	@Success		200			{object}	models.MenuResponse		"Menu sections"
//	@Failure		400			{object}	response.ErrorResponse	"Invalid filter"
//	@Router			/menu [get]
func (h *MenuHandler) GetMenu() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		filter, err := parseMenuFilter(r)
		if err != nil {
			logger.Warn("Invalid menu filter", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		if err := utils.ValidateStruct(h.validator, filter); err != nil {
			response.Error(w, err)
			return
		}

		menu, err := h.menuService.GetMenu(r.Context(), *filter)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, menu)
	}
}

// GetMenuItem godoc
//	@Summary	Get a menu item
//	@Tags		Menu
//	@Produce	json
//	@Param		id	path		string					true	"Menu item id"
//	@Success	200	{object}	models.MenuItem			"Menu item"
//	@Failure	404	{object}	response.ErrorResponse	"Unknown item"
//	@Router		/menu/{id} [get]
func (h *MenuHandler) GetMenuItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		item, err := h.menuService.GetItem(r.Context(), r.PathValue("id"))
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, item)
	}
}

func parseMenuFilter(r *http.Request) (*models.MenuFilter, error) {
	q := r.URL.Query()

	filter := &models.MenuFilter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
	}

	var err error
	if filter.MinPrice, err = queryFloat(q.Get("minPrice"), "minPrice"); err != nil {
		return nil, err
	}
	if filter.MaxPrice, err = queryFloat(q.Get("maxPrice"), "maxPrice"); err != nil {
		return nil, err
	}

	// accepts ?dietary=vegan,spicy as well as repeated keys
	for _, raw := range q["dietary"] {
		for tag := range strings.SplitSeq(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				filter.Dietary = append(filter.Dietary, models.DietaryTag(strings.ToLower(tag)))
			}
		}
	}

	if raw := q.Get("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.AddValidationError("featured", "Must be true or false")
		}
		filter.Featured = featured
	}

	return filter, nil
}

func queryFloat(raw, name string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return nil, errors.AddValidationError(name, "Must be a number")
	}

	return &v, nil
}
