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

// RunDoctors drives the doctor management page: list with search and
// specialization filter, plus onboarding, status update, view and delete.
func (a *App) RunDoctors(ctx context.Context) error {
	ctrl := controller.NewDoctors(a.Doctors)
	defer ctrl.Close()

	onboardWF := workflow.NewOnboardDoctor(ctrl, a.Doctors)
	statusWF := workflow.NewUpdateDoctorStatus(ctrl, a.Doctors)
	deleteWF := workflow.NewDeleteDoctor(ctrl, a.Doctors)

	_ = ctrl.Refresh(ctx)
	a.renderDoctors(ctrl)

	for {
		line, ok := a.readLine("doctors> ")
		if !ok {
			return nil
		}
		cmd, arg := splitCommand(line)
		switch cmd {
		case "":
		case "list":
			a.renderDoctors(ctrl)
		case "refresh", "retry":
			_ = ctrl.Refresh(ctx)
			a.renderDoctors(ctrl)
		case "search":
			ctrl.SetSearchTerm(arg)
			a.renderDoctors(ctrl)
		case "filter":
			if arg != controller.CategoryAll && !model.Specialization(arg).Valid() {
				a.printf("unknown specialization %q\n", arg)
				continue
			}
			ctrl.SetCategoryFilter(arg)
			a.renderDoctors(ctrl)
		case "view":
			a.viewDoctor(ctrl, arg)
		case "onboard":
			a.onboardDoctor(ctx, onboardWF)
			a.renderDoctors(ctrl)
		case "status":
			a.updateDoctorStatus(ctx, ctrl, statusWF, arg)
			a.renderDoctors(ctrl)
		case "delete":
			a.deleteDoctor(ctx, ctrl, deleteWF, arg)
			a.renderDoctors(ctrl)
		case "help":
			a.printf("commands: list, refresh, search <term>, filter <SPECIALIZATION|ALL>, view <id>, onboard, status <id>, delete <id>, quit\n")
		case "quit", "exit":
			return nil
		default:
			a.printf("unknown command %q, try help\n", cmd)
		}
	}
}

func (a *App) renderDoctors(ctrl *controller.Controller[model.Doctor]) {
	state, msg := ctrl.State()
	switch state {
	case controller.StateLoading:
		a.printf("Loading doctors...\n")
		return
	case controller.StateError:
		a.printf("Error: %s (type retry)\n", msg)
		return
	}

	total, filtered := ctrl.Counts()
	a.printf("Total Doctors: %d   Filtered Results: %d\n", total, filtered)
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tSPECIALIZATION\tLICENSE\tSTATUS")
	for _, d := range ctrl.Filtered() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", d.ID, d.FullName(), d.Email, d.Specialization, d.LicenseNumber, d.Status)
	}
	w.Flush()
}

func (a *App) viewDoctor(ctrl *controller.Controller[model.Doctor], arg string) {
	d, ok := findDoctor(ctrl, arg)
	if !ok {
		a.printf("no doctor with id %q\n", arg)
		return
	}
	ctrl.Select(d)
	defer ctrl.Deselect()
	a.printf("Doctor #%d (user #%d)\n  Name: %s\n  Email: %s\n  Phone: %s\n  Specialization: %s\n  License: %s\n  Experience: %d years\n  Qualifications: %s\n  Fee: %.2f\n  Status: %s\n  Created: %s\n",
		d.ID, d.UserID, d.FullName(), d.Email, d.PhoneNumber, d.Specialization, d.LicenseNumber,
		d.ExperienceYears, d.Qualifications, d.ConsultationFee, d.Status, d.CreatedAt)
	if d.Bio != "" {
		a.printf("  Bio: %s\n", d.Bio)
	}
}

func (a *App) onboardDoctor(ctx context.Context, wf *workflow.Workflow[model.OnboardDoctorRequest]) {
	if !wf.Open() {
		return
	}
	form := wf.Form()
	form.FirstName, _ = a.readLine("first name: ")
	form.LastName, _ = a.readLine("last name: ")
	form.Email, _ = a.readLine("email: ")
	form.Username, _ = a.readLine("username: ")
	form.Password, _ = a.readLine("password: ")
	form.PhoneNumber, _ = a.readLine("phone: ")
	if spec, _ := a.readLine("specialization [GENERAL_PHYSICIAN]: "); spec != "" {
		form.Specialization = model.Specialization(spec)
	}
	form.LicenseNumber, _ = a.readLine("license number: ")
	if years, _ := a.readLine("experience years: "); years != "" {
		form.ExperienceYears, _ = strconv.Atoi(years)
	}
	form.Qualifications, _ = a.readLine("qualifications: ")
	form.Bio, _ = a.readLine("bio (optional): ")
	if fee, _ := a.readLine("consultation fee: "); fee != "" {
		form.ConsultationFee, _ = strconv.ParseFloat(fee, 64)
	}
	wf.SetForm(form)
	if err := wf.Submit(ctx); err != nil {
		a.printf("Error: %s\n", wf.Err())
		wf.Close()
		return
	}
	a.printf("doctor onboarded\n")
}

func (a *App) updateDoctorStatus(ctx context.Context, ctrl *controller.Controller[model.Doctor], wf *workflow.Workflow[workflow.StatusForm], arg string) {
	d, ok := findDoctor(ctrl, arg)
	if !ok {
		a.printf("no doctor with id %q\n", arg)
		return
	}
	ctrl.Select(d)
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

func (a *App) deleteDoctor(ctx context.Context, ctrl *controller.Controller[model.Doctor], wf *workflow.Workflow[workflow.ConfirmForm], arg string) {
	d, ok := findDoctor(ctrl, arg)
	if !ok {
		a.printf("no doctor with id %q\n", arg)
		return
	}
	ctrl.Select(d)
	if !wf.Open() {
		return
	}
	form := wf.Form()
	answer, _ := a.readLine("delete Dr. " + form.Name + "? (y/n): ")
	if answer != "y" {
		wf.Close()
		return
	}
	if err := wf.Submit(ctx); err != nil {
		a.printf("Error: %s\n", wf.Err())
		wf.Close()
		return
	}
	a.printf("doctor deleted\n")
}

func findDoctor(ctrl *controller.Controller[model.Doctor], arg string) (model.Doctor, bool) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return model.Doctor{}, false
	}
	for _, d := range ctrl.Collection() {
		if d.ID == id {
			return d, true
		}
	}
	return model.Doctor{}, false
}
