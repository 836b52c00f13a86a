package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/UhCardoso/travel-manager-front/internal/client/models"
	"github.com/UhCardoso/travel-manager-front/internal/client/router"
)

// List shows one page of the user's travel requests.
func (a *App) List(ctx context.Context, page int) error {
	if !a.enter(ctx, router.PathUserTravelRequests) {
		return nil
	}
	p, err := a.travelService.List(ctx, page)
	if err != nil {
		return err
	}
	printlnFn(renderPage(p, false))
	return nil
}

func (a *App) Show(ctx context.Context, id int64) error {
	if !a.enter(ctx, router.PathUserTravelRequests) {
		return nil
	}
	tr, err := a.travelService.Details(ctx, id)
	if err != nil {
		return err
	}
	printlnFn(renderRequest(tr))
	return nil
}

// Create shows the new-request form. The destination may be picked from a
// geocoder search; the remaining fields are typed in.
func (a *App) Create(ctx context.Context) error {
	if !a.enter(ctx, router.PathCreateTravelRequest) {
		return nil
	}

	var req models.CreateTravelRequest
	var err error

	if req.Name, err = getSimpleText(a.reader, "Trip name", a.out); err != nil {
		return err
	}
	if req, err = a.pickDestination(ctx, req); err != nil {
		return err
	}
	if req.DepartureDate, err = getSimpleText(a.reader, "Departure date (YYYY-MM-DD)", a.out); err != nil {
		return err
	}
	if req.ReturnDate, err = getSimpleText(a.reader, "Return date (YYYY-MM-DD)", a.out); err != nil {
		return err
	}

	tr, err := a.travelService.Create(ctx, req)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Travel request #%d created.", tr.ID))
	a.goTo(ctx, router.PathUserTravelRequests)
	return nil
}

// pickDestination lets the user search and choose a destination. An empty
// query or choice leaves the destination blank; a failed search is reported
// and the form carries on without it.
func (a *App) pickDestination(ctx context.Context, req models.CreateTravelRequest) (models.CreateTravelRequest, error) {
	query, err := getSimpleText(a.reader, "Search destination (empty to skip)", a.out)
	if err != nil || query == "" {
		return req, err
	}

	found, err := a.destinationService.Search(ctx, query)
	if err != nil {
		report(err)
		return req, nil
	}
	printlnFn(renderDestinations(found))
	if len(found) == 0 {
		return req, nil
	}

	choice, err := getSimpleText(a.reader, "Pick a number (empty to skip)", a.out)
	if err != nil || choice == "" {
		return req, err
	}
	n, convErr := strconv.Atoi(choice)
	if convErr != nil || n < 1 || n > len(found) {
		printlnFn("Invalid choice, destination left blank.")
		return req, nil
	}
	return found[n-1].ApplyTo(req), nil
}

func (a *App) Cancel(ctx context.Context, id int64) error {
	if !a.enter(ctx, router.PathUserTravelRequests) {
		return nil
	}
	tr, err := a.travelService.Cancel(ctx, id)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Travel request #%d is now %s.", tr.ID, statusLabel(tr.Status)))
	return nil
}

// Search runs a destination lookup from the create view.
func (a *App) Search(ctx context.Context, query string) error {
	if !a.enter(ctx, router.PathCreateTravelRequest) {
		return nil
	}
	found, err := a.destinationService.Search(ctx, query)
	if err != nil {
		return err
	}
	printlnFn(renderDestinations(found))
	return nil
}
