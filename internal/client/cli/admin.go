package cli

import (
	"context"
	"fmt"

	"github.com/UhCardoso/travel-manager-front/internal/client/models"
	"github.com/UhCardoso/travel-manager-front/internal/client/router"
)

func (a *App) AdminList(ctx context.Context, page int) error {
	if !a.enter(ctx, router.PathAdminTravelRequests) {
		return nil
	}
	p, err := a.adminService.List(ctx, page)
	if err != nil {
		return err
	}
	printlnFn(renderPage(p, true))
	return nil
}

func (a *App) Approve(ctx context.Context, id int64) error {
	return a.adminAction(ctx, id, a.adminService.Approve)
}

func (a *App) Reject(ctx context.Context, id int64) error {
	return a.adminAction(ctx, id, a.adminService.Reject)
}

func (a *App) SetStatus(ctx context.Context, id int64, status string) error {
	return a.adminAction(ctx, id, func(ctx context.Context, id int64) (*models.TravelRequest, error) {
		return a.adminService.SetStatus(ctx, id, models.Status(status))
	})
}

func (a *App) adminAction(ctx context.Context, id int64, do func(context.Context, int64) (*models.TravelRequest, error)) error {
	if !a.enter(ctx, router.PathAdminTravelRequests) {
		return nil
	}
	tr, err := do(ctx, id)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Travel request #%d is now %s.", tr.ID, statusLabel(tr.Status)))
	return nil
}
