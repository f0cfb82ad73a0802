package notion

import "github.com/taskline/notion-sync/internal/models"

// Field mapping between a task and its Notion page, total over the task's
// fields:
//
//	title       → "Name"        (title)
//	status      → "Status"      (select, same enumeration as the task)
//	priority    → "Priority"    (select, same enumeration as the task)
//	description → "Description" (rich_text, empty string when absent)
//	due_date    → "Due Date"    (date, omitted entirely when absent)
func PageProperties(task models.Task) Properties {
	props := Properties{
		"Name":        {Title: []RichText{{Text: TextContent{Content: task.Title}}}},
		"Status":      {Select: &SelectOption{Name: task.Status}},
		"Priority":    {Select: &SelectOption{Name: task.Priority}},
		"Description": {RichText: []RichText{{Text: TextContent{Content: task.Description}}}},
	}

	if task.DueDate != nil {
		props["Due Date"] = Property{Date: &Date{Start: *task.DueDate}}
	}

	return props
}
