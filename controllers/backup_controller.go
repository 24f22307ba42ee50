package controllers

import (
	"errors"
	"net/http"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"pointarthub/models"
	"pointarthub/services"
)

type BackupController struct {
	backupService  *services.BackupService
	notifications  *services.NotificationService
	backupCounter  prometheus.Counter
	restoreCounter prometheus.Counter
}

func NewBackupController(backupService *services.BackupService, notifications *services.NotificationService, backupCounter, restoreCounter prometheus.Counter) *BackupController {
	return &BackupController{
		backupService:  backupService,
		notifications:  notifications,
		backupCounter:  backupCounter,
		restoreCounter: restoreCounter,
	}
}

// Export runs a full backup and reports the resulting snapshot file.
func (b *BackupController) Export(c echo.Context) error {
	type ExportRequest struct {
		Description string `json:"description"`
	}

	var req ExportRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}

	triggeredBy := ""
	if user, ok := c.Get("user").(*models.User); ok {
		triggeredBy = user.Username
	}

	started := time.Now()
	run, err := b.backupService.Export(c.Request().Context(), req.Description, triggeredBy, func(percent int) {
		logrus.WithField("percent", percent).Debug("Backup progress")
	})
	if err != nil {
		if errors.Is(err, services.ErrOperationInProgress) {
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		}
		logrus.WithError(err).Error("Backup export failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "backup failed"})
	}

	b.backupCounter.Inc()
	return c.JSON(http.StatusOK, echo.Map{
		"message":       "Backup completed",
		"filename":      run.Filename,
		"total_records": run.TotalRecords,
		"duration":      time.Since(started).String(),
	})
}

// Download streams a previously exported snapshot file.
func (b *BackupController) Download(c echo.Context) error {
	filename := c.Param("filename")
	if filename == "" || filename != filepath.Base(filename) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid filename"})
	}

	file, err := b.backupService.OpenSnapshot(filename)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "snapshot not found"})
	}
	defer file.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+filename)
	return c.Stream(http.StatusOK, "application/json", file)
}

func (b *BackupController) ListRuns(c echo.Context) error {
	runs, err := b.backupService.ListRuns(20)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to list backups"})
	}
	return c.JSON(http.StatusOK, runs)
}

// Restore replaces collection contents from an uploaded snapshot. The
// caller must type the confirmation phrase; a mistyped phrase aborts
// cleanly with nothing touched.
func (b *BackupController) Restore(c echo.Context) error {
	confirmation := c.FormValue("confirmation")

	fileHeader, err := c.FormFile("snapshot")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "snapshot file is required"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "failed to open uploaded file"})
	}
	defer file.Close()

	result, err := b.backupService.Restore(c.Request().Context(), file, confirmation, nil)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrConfirmationRequired):
			return c.JSON(http.StatusPreconditionFailed, echo.Map{
				"error": "type " + services.RestoreConfirmationPhrase + " to confirm the restore",
			})
		case errors.Is(err, services.ErrOperationInProgress):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidSnapshot):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		default:
			logrus.WithError(err).Error("Restore failed")
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "restore failed"})
		}
	}

	b.restoreCounter.Inc()
	if err := b.notifications.RecordSystemEvent(
		"Data restored from backup",
		"Collections were replaced from an uploaded snapshot",
		models.PriorityHigh,
	); err != nil {
		logrus.WithError(err).Warn("Failed to record restore event")
	}

	return c.JSON(http.StatusOK, result)
}
