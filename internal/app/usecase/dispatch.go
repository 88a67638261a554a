package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/hostelhub/notify-gateway/internal/domain/notify"
	"github.com/hostelhub/notify-gateway/internal/domain/phone"
	"github.com/hostelhub/notify-gateway/internal/domain/template"
	"github.com/hostelhub/notify-gateway/internal/infra/tasks"
)

// TaskSpec asks the dispatch to create a to-do record per recipient alongside
// the notification.
type TaskSpec struct {
	Title   string
	DueDate string
}

type DispatchInput struct {
	Session    string
	Template   string
	Recipients []notify.Recipient
	Task       *TaskSpec
}

type DispatchOutput struct {
	Results      []notify.DispatchResult
	Summary      notify.DispatchSummary
	TasksCreated int
	TasksFailed  int
}

// DispatchUsecase sends one personalized message per recipient, sequentially
// and in input order. The underlying automation session is single-threaded,
// so there is no fan-out: each send completes before the next begins.
// Individual failures never abort the batch.
type DispatchUsecase struct {
	sender  MessageSender
	tasks   TaskCreator
	country string
}

func NewDispatchUsecase(sender MessageSender, taskStore TaskCreator, countryCode string) *DispatchUsecase {
	return &DispatchUsecase{sender: sender, tasks: taskStore, country: countryCode}
}

func (u *DispatchUsecase) Execute(ctx context.Context, in DispatchInput) (*DispatchOutput, error) {
	if strings.TrimSpace(in.Session) == "" {
		return nil, fmt.Errorf("session is required")
	}
	if strings.TrimSpace(in.Template) == "" {
		return nil, fmt.Errorf("template is required")
	}
	if in.Task != nil && u.tasks == nil {
		return nil, fmt.Errorf("task creation requested but no task store configured")
	}

	out := &DispatchOutput{Results: make([]notify.DispatchResult, 0, len(in.Recipients))}

	for _, r := range in.Recipients {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// task creation and notification delivery are independent; a
		// task failure must not block the send, nor the reverse
		if in.Task != nil {
			if err := u.createTask(ctx, *in.Task, r); err != nil {
				out.TasksFailed++
				log.Printf("dispatch: create task for %s (%s): %v", r.ID, r.DisplayName, err)
			} else {
				out.TasksCreated++
			}
		}

		number, skip := u.usableNumber(r)
		if skip != "" {
			out.Results = append(out.Results, notify.DispatchResult{
				Recipient:   r,
				Outcome:     notify.OutcomeSkipped,
				ErrorDetail: skip,
			})
			continue
		}

		body := template.Render(in.Template, u.fields(r, number))

		if _, err := u.sender.SendMessage(ctx, in.Session, number, body); err != nil {
			log.Printf("dispatch: send to %s (recipient %s, number %s): %v", r.DisplayName, r.ID, number, err)
			out.Results = append(out.Results, notify.DispatchResult{
				Recipient:   r,
				Outcome:     notify.OutcomeFailure,
				ErrorDetail: err.Error(),
			})
			continue
		}

		out.Results = append(out.Results, notify.DispatchResult{
			Recipient: r,
			Outcome:   notify.OutcomeSuccess,
		})
	}

	out.Summary = notify.Summarize(out.Results)
	return out, nil
}

// usableNumber normalizes the recipient's contact number. A missing or
// unusable number is classified as skipped; the session layer is never
// contacted for it.
func (u *DispatchUsecase) usableNumber(r notify.Recipient) (number, skipReason string) {
	if strings.TrimSpace(r.PhoneNumber) == "" {
		return "", notify.ErrNoContact.Error()
	}
	number, err := phone.NormalizeWithCountry(r.PhoneNumber, u.country)
	if err != nil {
		return "", fmt.Sprintf("%s: %v", notify.ErrNoContact.Error(), err)
	}
	return number, ""
}

// fields merges the recipient's template fields with the implicit name and
// mobile tokens. Explicit fields win.
func (u *DispatchUsecase) fields(r notify.Recipient, number string) map[string]string {
	merged := map[string]string{
		"name":   r.DisplayName,
		"mobile": number,
	}
	for k, v := range r.TemplateFields {
		merged[k] = v
	}
	return merged
}

func (u *DispatchUsecase) createTask(ctx context.Context, spec TaskSpec, r notify.Recipient) error {
	return u.tasks.Create(ctx, tasks.Task{
		ID:           uuid.NewString(),
		Title:        spec.Title,
		DueDate:      spec.DueDate,
		AssignedTo:   r.ID,
		AssignedName: r.DisplayName,
	})
}
