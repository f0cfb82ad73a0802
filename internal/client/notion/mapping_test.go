package notion

import (
	"testing"

	"github.com/taskline/notion-sync/internal/models"
)

func TestPagePropertiesFullTask(t *testing.T) {
	due := "2026-09-15"
	task := models.Task{
		Title:       "Ship it",
		Description: "final release",
		Status:      models.StatusInProgress,
		Priority:    models.PriorityHigh,
		DueDate:     &due,
	}

	props := PageProperties(task)

	name, ok := props["Name"]
	if !ok || len(name.Title) != 1 || name.Title[0].Text.Content != "Ship it" {
		t.Errorf("Name property wrong: %+v", name)
	}
	if props["Status"].Select == nil || props["Status"].Select.Name != models.StatusInProgress {
		t.Errorf("Status property wrong: %+v", props["Status"])
	}
	if props["Priority"].Select == nil || props["Priority"].Select.Name != models.PriorityHigh {
		t.Errorf("Priority property wrong: %+v", props["Priority"])
	}
	desc := props["Description"]
	if len(desc.RichText) != 1 || desc.RichText[0].Text.Content != "final release" {
		t.Errorf("Description property wrong: %+v", desc)
	}
	if props["Due Date"].Date == nil || props["Due Date"].Date.Start != due {
		t.Errorf("Due Date property wrong: %+v", props["Due Date"])
	}
}

func TestPagePropertiesOmitsAbsentDueDate(t *testing.T) {
	props := PageProperties(models.Task{
		Title:    "No deadline",
		Status:   models.StatusTodo,
		Priority: models.PriorityLow,
	})

	if _, ok := props["Due Date"]; ok {
		t.Error("absent due date must omit the property, not send null")
	}
	// Empty description still maps, as an empty string.
	desc := props["Description"]
	if len(desc.RichText) != 1 || desc.RichText[0].Text.Content != "" {
		t.Errorf("empty description should map to empty rich text: %+v", desc)
	}
}
