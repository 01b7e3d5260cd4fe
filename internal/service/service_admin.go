// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-cheat-catalog/internal/audit"
	"github.com/MKhiriev/go-cheat-catalog/internal/logger"
	"github.com/MKhiriev/go-cheat-catalog/internal/validators"
	"github.com/MKhiriev/go-cheat-catalog/models"
)

// Values of the attemptedAccess detail of unauthorized_admin_access.
const (
	AccessAdminPanel    = "admin_panel"
	AccessSecurityLog   = "security_log"
	AccessSettings      = "settings"
	AccessCatalogChange = "catalog_change"
)

type adminService struct {
	auth        AuthService
	catalog     CatalogService
	validator   validators.Validator
	securityLog audit.SecurityLogger

	logger *logger.Logger
}

func NewAdminService(
	auth AuthService,
	catalog CatalogService,
	validator validators.Validator,
	securityLog audit.SecurityLogger,
	log *logger.Logger,
) AdminService {
	return &adminService{
		auth:        auth,
		catalog:     catalog,
		validator:   validator,
		securityLog: securityLog,
		logger:      log,
	}
}

func (a *adminService) RequireAdmin(ctx context.Context, attemptedAccess string) (models.SessionUser, error) {
	user := a.auth.CurrentUser()
	if user != nil && user.IsAdmin() {
		return *user, nil
	}

	var userID, userRole any
	if user != nil {
		userID, userRole = user.ID, string(user.Role)
	}
	a.securityLog.Record(ctx, models.EventUnauthorizedAdminAccess, map[string]any{
		"userId":          userID,
		"userRole":        userRole,
		"attemptedAccess": attemptedAccess,
	})

	return models.SessionUser{}, ErrAdminAccessDenied
}

func (a *adminService) SaveGame(ctx context.Context, form models.GameForm) (models.Game, error) {
	admin, err := a.RequireAdmin(ctx, AccessCatalogChange)
	if err != nil {
		return models.Game{}, err
	}

	form.Name = cleanText(form.Name)
	form.Description = cleanText(form.Description)
	form.Image = strings.TrimSpace(form.Image)

	if err = a.validator.Validate(ctx, form); err != nil {
		return models.Game{}, formError(err)
	}

	if form.ID == "" {
		a.securityLog.Record(ctx, models.EventAdminGameCreate, map[string]any{
			"adminId":  admin.ID,
			"gameName": form.Name,
		})
		return a.catalog.AddGame(ctx, models.GameInput{
			Name:        form.Name,
			Description: form.Description,
			Image:       form.Image,
		})
	}

	if _, ok := a.catalog.Game(ctx, form.ID); !ok {
		return models.Game{}, ErrGameNotFound
	}

	a.securityLog.Record(ctx, models.EventAdminGameUpdate, map[string]any{
		"adminId":  admin.ID,
		"gameId":   form.ID,
		"gameName": form.Name,
	})
	err = a.catalog.UpdateGame(ctx, form.ID, models.GameUpdate{
		Name:        &form.Name,
		Description: &form.Description,
		Image:       &form.Image,
	})
	if err != nil {
		return models.Game{}, err
	}

	game, _ := a.catalog.Game(ctx, form.ID)
	return game, nil
}

func (a *adminService) DeleteGame(ctx context.Context, id string) error {
	admin, err := a.RequireAdmin(ctx, AccessCatalogChange)
	if err != nil {
		return err
	}

	a.securityLog.Record(ctx, models.EventAdminGameDelete, map[string]any{"adminId": admin.ID, "gameId": id})
	return a.catalog.DeleteGame(ctx, id)
}

func (a *adminService) SaveCheat(ctx context.Context, form models.CheatForm) (models.Cheat, error) {
	admin, err := a.RequireAdmin(ctx, AccessCatalogChange)
	if err != nil {
		return models.Cheat{}, err
	}

	form.Name = cleanText(form.Name)
	form.Description = cleanText(form.Description)
	form.URL = strings.TrimSpace(form.URL)
	form.Image = strings.TrimSpace(form.Image)
	form.Tags = cleanTags(form.Tags)

	if err = a.validator.Validate(ctx, form); err != nil {
		return models.Cheat{}, formError(err)
	}

	if form.ID == "" {
		a.securityLog.Record(ctx, models.EventAdminCheatCreate, map[string]any{
			"adminId":   admin.ID,
			"cheatName": form.Name,
			"gameId":    form.GameID,
		})
		return a.catalog.AddCheat(ctx, models.CheatInput{
			GameID:      form.GameID,
			Name:        form.Name,
			Description: form.Description,
			URL:         form.URL,
			Image:       form.Image,
			Tags:        form.Tags,
		})
	}

	if _, ok := a.catalog.Cheat(ctx, form.ID); !ok {
		return models.Cheat{}, ErrCheatNotFound
	}

	a.securityLog.Record(ctx, models.EventAdminCheatUpdate, map[string]any{
		"adminId":   admin.ID,
		"cheatId":   form.ID,
		"cheatName": form.Name,
		"gameId":    form.GameID,
	})
	err = a.catalog.UpdateCheat(ctx, form.ID, models.CheatUpdate{
		GameID:      &form.GameID,
		Name:        &form.Name,
		Description: &form.Description,
		URL:         &form.URL,
		Image:       &form.Image,
		Tags:        &form.Tags,
	})
	if err != nil {
		return models.Cheat{}, err
	}

	cheat, _ := a.catalog.Cheat(ctx, form.ID)
	return cheat, nil
}

func (a *adminService) DeleteCheat(ctx context.Context, id string) error {
	admin, err := a.RequireAdmin(ctx, AccessCatalogChange)
	if err != nil {
		return err
	}

	a.securityLog.Record(ctx, models.EventAdminCheatDelete, map[string]any{"adminId": admin.ID, "cheatId": id})
	return a.catalog.DeleteCheat(ctx, id)
}

// SetHomepageVideo stores url as the homepage video. An empty url clears it.
func (a *adminService) SetHomepageVideo(ctx context.Context, url string) error {
	admin, err := a.RequireAdmin(ctx, AccessSettings)
	if err != nil {
		return err
	}

	form := models.SettingsForm{HomepageVideoURL: strings.TrimSpace(url)}
	if err = a.validator.Validate(ctx, form); err != nil {
		return formError(err)
	}

	a.securityLog.Record(ctx, models.EventAdminSettingsUpdate, map[string]any{
		"adminId":          admin.ID,
		"homepageVideoUrl": form.HomepageVideoURL,
	})
	return a.catalog.UpdateSettings(ctx, models.SiteSettingsUpdate{HomepageVideoURL: &form.HomepageVideoURL})
}

func (a *adminService) SecurityEvents(ctx context.Context) ([]models.SecurityLogEntry, error) {
	if _, err := a.RequireAdmin(ctx, AccessSecurityLog); err != nil {
		return nil, err
	}
	return a.securityLog.Entries(ctx), nil
}

func cleanText(s string) string {
	return validators.SanitizeHTML(strings.TrimSpace(s))
}

// cleanTags trims and escapes tags, dropping empty and repeated ones while
// keeping the first occurrence order.
func cleanTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = cleanText(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

func formError(err error) error {
	return &ValidationError{Field: FieldForm, Message: err.Error(), Err: err}
}
