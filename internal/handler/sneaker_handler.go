package handler

import (
	"errors"
	"net/http"
	"strconv"

	"sneakershop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// usecaseのエラー種別をHTTPステータスへ変換する。
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}

	var nf *usecase.NotFoundError
	if errors.As(err, &nf) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: nf.Error()})
	}

	var su *usecase.SizeUnavailableError
	if errors.As(err, &su) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: su.Error()})
	}

	var is *usecase.InsufficientStockError
	if errors.As(err, &is) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: is.Error()})
	}

	var ii *usecase.InvalidInputError
	if errors.As(err, &ii) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ii.Error()})
	}

	if errors.Is(err, usecase.ErrEmptyCart) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// /sneakers の公開API
type SneakerHandler struct {
	uc *usecase.SneakerUsecase
}

// DI
func NewSneakerHandler(uc *usecase.SneakerUsecase) *SneakerHandler {
	return &SneakerHandler{uc: uc}
}

type CreateSneakerRequest struct {
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Price       float64 `json:"price"`
	Colorway    string  `json:"colorway"`
	Tag         string  `json:"tag"`
	ImageURL    string  `json:"image_url"`
	Gender      string  `json:"gender"`
	Description string  `json:"description"`
}

type SetSizeStockRequest struct {
	EUSize int   `json:"eu_size"`
	Stock  int64 `json:"stock"`
}

func (h *SneakerHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/sneakers", h.list)
	e.POST("/sneakers", h.create)
	e.GET("/sneakers/:id", h.detail)
	e.DELETE("/sneakers/:id", h.delete)
	e.GET("/sneakers/:id/sizes", h.listSizes)
	e.POST("/sneakers/:id/sizes", h.setSizeStock)
}

func (h *SneakerHandler) list(c echo.Context) error {
	gender := c.QueryParam("gender")

	out, err := h.uc.ListSneakers(c.Request().Context(), gender)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SneakerHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetSneaker(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SneakerHandler) create(c echo.Context) error {
	var req CreateSneakerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateSneaker(c.Request().Context(), usecase.CreateSneakerInput{
		Name:        req.Name,
		Brand:       req.Brand,
		Price:       req.Price,
		Colorway:    req.Colorway,
		Tag:         req.Tag,
		ImageURL:    req.ImageURL,
		Gender:      req.Gender,
		Description: req.Description,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *SneakerHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteSneaker(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *SneakerHandler) listSizes(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.ListSizes(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SneakerHandler) setSizeStock(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req SetSizeStockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.SetSizeStock(c.Request().Context(), id, req.EUSize, req.Stock)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
