package handlers

import (
	"fmt"
	"io"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/welldanyogia/webrana-trivia-backend/internal/models"
)

// maxBodyBytes bounds request bodies read by the handlers
const maxBodyBytes = 1 << 20

// readBody reads the request body up to maxBodyBytes
func readBody(c echo.Context) ([]byte, error) {
	body := c.Request().Body
	if body == nil {
		return nil, nil
	}
	data, err := io.ReadAll(io.LimitReader(body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if len(data) > maxBodyBytes {
		return nil, fmt.Errorf("request body exceeds %d bytes", maxBodyBytes)
	}
	return data, nil
}

// parseID parses a positive numeric path parameter
func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// categoryMap formats categories as {"<id>": "<type>"}
func categoryMap(categories []models.Category) map[string]string {
	m := make(map[string]string, len(categories))
	for _, category := range categories {
		m[strconv.FormatUint(uint64(category.ID), 10)] = category.Type
	}
	return m
}
