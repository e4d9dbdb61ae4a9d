package services

import (
	"fmt"
	"time"

	"github.com/szabol/damage_report_app/internal/core/domain"
	portssvc "github.com/szabol/damage_report_app/internal/core/ports/services"
)

const notificationTimeLayout = "2006-01-02 15:04"

// buildMessage produces the subject line, the introductory sentence and the
// ordered detail lines for one event. Detail lines for missing relations are
// simply omitted, the mail never contains placeholder values.
func buildMessage(event domain.EventName, nctx *notificationContext) (string, string, []portssvc.MessageDetail) {
	switch event {
	case domain.EventReportCreated:
		return buildReportCreatedMessage(nctx)
	case domain.EventDamageIDUpdate:
		return buildDamageIDUpdatedMessage(nctx)
	case domain.EventStatusChanged:
		return buildStatusChangedMessage(nctx)
	case domain.EventReportClosed:
		return buildReportClosedMessage(nctx)
	}
	return "", "", nil
}

func buildReportCreatedMessage(nctx *notificationContext) (string, string, []portssvc.MessageDetail) {
	subject := fmt.Sprintf("New damage report %s", nctx.report.PublicIdentifier)
	intro := "A new damage report has been registered."

	details := newMessageDetails(nctx)
	details.add("Claimant", nctx.report.Claimant.Name)
	details.addBuilding()
	details.addUser("Registered by", nctx.creator)
	details.add("Registered at", nctx.report.CreatedAt.Format(notificationTimeLayout))
	if nctx.report.Description != "" {
		details.add("Description", nctx.report.Description)
	}
	return subject, intro, details.lines
}

func buildDamageIDUpdatedMessage(nctx *notificationContext) (string, string, []portssvc.MessageDetail) {
	subject := fmt.Sprintf("Damage identifier recorded for report %s", nctx.report.PublicIdentifier)
	intro := "The insurer's damage identifier has been recorded on the report."

	details := newMessageDetails(nctx)
	if nctx.report.DamageID != nil {
		details.add("Damage identifier", *nctx.report.DamageID)
	}
	details.addStatus()
	details.addUser("Updated by", nctx.lastActor)
	return subject, intro, details.lines
}

func buildStatusChangedMessage(nctx *notificationContext) (string, string, []portssvc.MessageDetail) {
	subject := fmt.Sprintf("Status change on damage report %s", nctx.report.PublicIdentifier)
	intro := "The status of the damage report has changed."

	details := newMessageDetails(nctx)
	details.addStatus()
	details.addUser("Changed by", nctx.lastActor)
	details.addComment()
	return subject, intro, details.lines
}

func buildReportClosedMessage(nctx *notificationContext) (string, string, []portssvc.MessageDetail) {
	subject := fmt.Sprintf("Damage report %s closed", nctx.report.PublicIdentifier)
	intro := "The damage report has been closed."

	details := newMessageDetails(nctx)
	details.addStatus()
	details.addUser("Closed by", nctx.lastActor)
	details.addComment()
	details.add("Closed at", time.Now().Format(notificationTimeLayout))
	return subject, intro, details.lines
}

// messageDetails accumulates detail lines, always starting with the report
// identifier so every mail is traceable back to its report.
type messageDetails struct {
	nctx  *notificationContext
	lines []portssvc.MessageDetail
}

func newMessageDetails(nctx *notificationContext) *messageDetails {
	d := &messageDetails{nctx: nctx}
	d.add("Report", nctx.report.PublicIdentifier)
	return d
}

func (d *messageDetails) add(label string, value string) {
	d.lines = append(d.lines, portssvc.MessageDetail{Label: label, Value: value})
}

func (d *messageDetails) addStatus() {
	if d.nctx.status != nil {
		d.add("Status", d.nctx.status.Name)
	}
	if d.nctx.subStatus != nil {
		d.add("Sub-status", d.nctx.subStatus.Name)
	}
}

func (d *messageDetails) addBuilding() {
	if d.nctx.building != nil {
		d.add("Building", fmt.Sprintf("%s, %s", d.nctx.building.Name, d.nctx.building.Address))
	}
}

func (d *messageDetails) addUser(label string, user *domain.User) {
	if user != nil {
		d.add(label, user.Name)
	}
}

func (d *messageDetails) addComment() {
	if d.nctx.comment != nil && *d.nctx.comment != "" {
		d.add("Comment", *d.nctx.comment)
	}
}
