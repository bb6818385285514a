package console

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/mhdirfanpn/panadol-platform-client/internal/controller"
	"github.com/mhdirfanpn/panadol-platform-client/internal/model"
	"github.com/mhdirfanpn/panadol-platform-client/internal/workflow"
)

// RunUsers drives the user management page: list with search and role
// filter, plus the create, update-status, view and delete workflows.
func (a *App) RunUsers(ctx context.Context) error {
	ctrl := controller.NewUsers(a.Users)
	defer ctrl.Close()

	createWF := workflow.NewCreateUser(ctrl, a.Users)
	statusWF := workflow.NewUpdateUserStatus(ctrl, a.Users)
	deleteWF := workflow.NewDeleteUser(ctrl, a.Users)

	_ = ctrl.Refresh(ctx)
	a.renderUsers(ctrl)

	for {
		line, ok := a.readLine("users> ")
		if !ok {
			return nil
		}
		cmd, arg := splitCommand(line)
		switch cmd {
		case "":
		case "list":
			a.renderUsers(ctrl)
		case "refresh", "retry":
			_ = ctrl.Refresh(ctx)
			a.renderUsers(ctrl)
		case "search":
			ctrl.SetSearchTerm(arg)
			a.renderUsers(ctrl)
		case "filter":
			if arg != controller.CategoryAll && !model.Role(arg).Valid() {
				a.printf("unknown role %q (use one of %v or ALL)\n", arg, model.Roles())
				continue
			}
			ctrl.SetCategoryFilter(arg)
			a.renderUsers(ctrl)
		case "view":
			a.viewUser(ctrl, arg)
		case "create":
			a.createUser(ctx, createWF)
			a.renderUsers(ctrl)
		case "status":
			a.updateUserStatus(ctx, ctrl, statusWF, arg)
			a.renderUsers(ctrl)
		case "delete":
			a.deleteUser(ctx, ctrl, deleteWF, arg)
			a.renderUsers(ctrl)
		case "help":
			a.printf("commands: list, refresh, search <term>, filter <ROLE|ALL>, view <id>, create, status <id>, delete <id>, quit\n")
		case "quit", "exit":
			return nil
		default:
			a.printf("unknown command %q, try help\n", cmd)
		}
	}
}

func (a *App) renderUsers(ctrl *controller.Controller[model.User]) {
	state, msg := ctrl.State()
	switch state {
	case controller.StateLoading:
		a.printf("Loading users...\n")
		return
	case controller.StateError:
		a.printf("Error: %s (type retry)\n", msg)
		return
	}

	total, filtered := ctrl.Counts()
	a.printf("Total Users: %d   Filtered Results: %d\n", total, filtered)
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tUSERNAME\tROLE\tSTATUS")
	for _, u := range ctrl.Filtered() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", u.ID, u.FullName(), u.Email, u.Username, u.Role, u.Status)
	}
	w.Flush()
}

func (a *App) viewUser(ctrl *controller.Controller[model.User], arg string) {
	u, ok := findUser(ctrl, arg)
	if !ok {
		a.printf("no user with id %q\n", arg)
		return
	}
	ctrl.Select(u)
	defer ctrl.Deselect()
	a.printf("User #%d\n  Name: %s\n  Email: %s\n  Username: %s\n  Phone: %s\n  Role: %s\n  Status: %s\n  Created: %s\n",
		u.ID, u.FullName(), u.Email, u.Username, u.PhoneNumber, u.Role, u.Status, u.CreatedAt)
	if u.LastLogin != nil {
		a.printf("  Last login: %s\n", u.LastLogin)
	}
}

func (a *App) createUser(ctx context.Context, wf *workflow.Workflow[model.CreateUserRequest]) {
	if !wf.Open() {
		return
	}
	form := wf.Form()
	form.FirstName, _ = a.readLine("first name: ")
	form.LastName, _ = a.readLine("last name: ")
	form.Email, _ = a.readLine("email: ")
	form.Username, _ = a.readLine("username: ")
	form.Password, _ = a.readLine("password: ")
	form.PhoneNumber, _ = a.readLine("phone (optional): ")
	if role, _ := a.readLine("role [PATIENT]: "); role != "" {
		form.Role = model.Role(role)
	}
	wf.SetForm(form)
	if err := wf.Submit(ctx); err != nil {
		a.printf("Error: %s\n", wf.Err())
		wf.Close()
		return
	}
	a.printf("user created\n")
}

func (a *App) updateUserStatus(ctx context.Context, ctrl *controller.Controller[model.User], wf *workflow.Workflow[workflow.StatusForm], arg string) {
	u, ok := findUser(ctrl, arg)
	if !ok {
		a.printf("no user with id %q\n", arg)
		return
	}
	ctrl.Select(u)
	if !wf.Open() {
		return
	}
	form := wf.Form()
	a.printf("current status: %s\n", form.Status)
	if status, _ := a.readLine("new status: "); status != "" {
		form.Status = model.Status(status)
	}
	wf.SetForm(form)
	if err := wf.Submit(ctx); err != nil {
		a.printf("Error: %s\n", wf.Err())
		wf.Close()
		return
	}
	a.printf("status updated\n")
}

func (a *App) deleteUser(ctx context.Context, ctrl *controller.Controller[model.User], wf *workflow.Workflow[workflow.ConfirmForm], arg string) {
	u, ok := findUser(ctrl, arg)
	if !ok {
		a.printf("no user with id %q\n", arg)
		return
	}
	ctrl.Select(u)
	if !wf.Open() {
		return
	}
	form := wf.Form()
	answer, _ := a.readLine("delete " + form.Name + "? (y/n): ")
	if answer != "y" {
		wf.Close()
		return
	}
	if err := wf.Submit(ctx); err != nil {
		a.printf("Error: %s\n", wf.Err())
		wf.Close()
		return
	}
	a.printf("user deleted\n")
}

func findUser(ctrl *controller.Controller[model.User], arg string) (model.User, bool) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return model.User{}, false
	}
	for _, u := range ctrl.Collection() {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}
