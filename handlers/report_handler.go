package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yogamaster/yoga_master/stores"
)

type ReportHandler struct {
	reports stores.ReportStore
}

func NewReportHandler(reports stores.ReportStore) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) PopularClasses(c *fiber.Ctx) error {
	classes, err := h.reports.PopularClasses(c.Context())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(classes)
}

func (h *ReportHandler) PopularInstructors(c *fiber.Ctx) error {
	instructors, err := h.reports.PopularInstructors(c.Context())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(instructors)
}

func (h *ReportHandler) AdminStats(c *fiber.Ctx) error {
	stats, err := h.reports.AdminStats(c.Context())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(stats)
}

func (h *ReportHandler) EnrolledClasses(c *fiber.Ctx) error {
	enrolled, err := h.reports.EnrolledClasses(c.Context(), c.Params("email"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(enrolled)
}
