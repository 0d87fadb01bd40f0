package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/nagarseva/internal/domain"
	"github.com/spec-kit/nagarseva/internal/service"
	"github.com/spec-kit/nagarseva/internal/shell"
	"github.com/spec-kit/nagarseva/internal/views"
	"github.com/spec-kit/nagarseva/internal/web"
	apperrors "github.com/spec-kit/nagarseva/pkg/util/errorutil"
)

// PagesHandler renders the HTML shell and handles its form posts.
type PagesHandler struct {
	views   *views.Builder
	issues  *service.IssueService
	session *shell.Middleware
	logger  *zap.Logger
}

// NewPagesHandler constructs handler.
func NewPagesHandler(builder *views.Builder, issues *service.IssueService, session *shell.Middleware, logger *zap.Logger) *PagesHandler {
	return &PagesHandler{views: builder, issues: issues, session: session, logger: logger}
}

// Home GET / renders whichever view the shell state points at.
func (h *PagesHandler) Home(c *fiber.Ctx) error {
	state := shell.StateFromContext(c)
	ctx := c.UserContext()

	switch state.View {
	case domain.ViewCitizen:
		return h.render(c, "citizen", "Report", h.views.Citizen(ctx, c.QueryBool("reporting"), views.ReportForm{}))
	case domain.ViewAdmin:
		return h.render(c, "admin", "Dashboard", h.views.Admin(ctx, views.AdminFilter{
			Status:   c.Query("status"),
			Priority: c.Query("priority"),
			Search:   c.Query("q"),
		}))
	case domain.ViewMap:
		return h.render(c, "map", "Live Map", h.views.Map(ctx, c.Query("category"), c.QueryBool("heatmap", true)))
	case domain.ViewCommunity:
		return h.render(c, "community", "Community", h.views.Community(c.Query("tab")))
	case domain.ViewAnalytics:
		return h.render(c, "analytics", "Analytics", h.views.Analytics(ctx))
	}
	return h.render(c, "landing", "", h.views.Landing())
}

// SelectRole POST /shell/role.
func (h *PagesHandler) SelectRole(c *fiber.Ctx) error {
	next, err := shell.StateFromContext(c).SelectRole(domain.Role(c.FormValue("role")))
	if err != nil {
		return err
	}
	return h.saveAndRedirect(c, next, "/")
}

// Navigate POST /shell/view.
func (h *PagesHandler) Navigate(c *fiber.Ctx) error {
	next := shell.StateFromContext(c).Navigate(domain.View(c.FormValue("view")))
	return h.saveAndRedirect(c, next, "/")
}

// Logout POST /shell/logout.
func (h *PagesHandler) Logout(c *fiber.Ctx) error {
	h.session.Clear(c)
	return c.Redirect("/", fiber.StatusSeeOther)
}

// SubmitReport POST /citizen/reports. Validation failures re-render the form.
func (h *PagesHandler) SubmitReport(c *fiber.Ctx) error {
	form := views.ReportForm{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
		Priority:    c.FormValue("priority"),
		Address:     c.FormValue("address"),
	}
	issue, err := h.issues.Report(c.UserContext(), service.ReportInput{
		Title:       form.Title,
		Description: form.Description,
		Category:    domain.IssueCategory(form.Category),
		Priority:    domain.IssuePriority(form.Priority),
		Address:     form.Address,
	})
	if errors.Is(err, apperrors.ErrValidation) {
		domainErr := apperrors.ToDomainError(err)
		form.Error = "Please fill in the required fields."
		form.FieldErrors = make(map[string]string, len(domainErr.Details))
		for field, msg := range domainErr.Details {
			form.FieldErrors[field] = fmt.Sprint(msg)
		}
		c.Status(fiber.StatusUnprocessableEntity)
		return h.render(c, "citizen", "Report", h.views.Citizen(c.UserContext(), true, form))
	}
	if err != nil {
		return err
	}
	h.logger.Debug("report submitted from portal", zap.String("issue_id", issue.ID))
	return c.Redirect("/", fiber.StatusSeeOther)
}

// UpdateStatus POST /admin/issues/:id/status. It returns to the dashboard with
// the filters carried in the return query.
func (h *PagesHandler) UpdateStatus(c *fiber.Ctx) error {
	status := domain.IssueStatus(c.FormValue("status"))
	if _, err := h.issues.UpdateStatus(c.UserContext(), c.Params("id"), status); err != nil {
		return err
	}
	target := "/"
	if ret := c.Query("return"); ret != "" {
		target = "/?" + ret
	}
	return c.Redirect(target, fiber.StatusSeeOther)
}

func (h *PagesHandler) saveAndRedirect(c *fiber.Ctx, state shell.State, target string) error {
	if err := h.session.Save(c, state); err != nil {
		return apperrors.NewInternalError(err)
	}
	return c.Redirect(target, fiber.StatusSeeOther)
}

func (h *PagesHandler) render(c *fiber.Ctx, name, title string, page any) error {
	return c.Render(name, fiber.Map{
		"Chrome": h.views.Chrome(shell.StateFromContext(c), title),
		"Page":   page,
	}, web.Layout)
}
