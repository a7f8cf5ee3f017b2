package github

import (
	"context"
	"fmt"
	"strings"
)

// Board column names with lifecycle meaning.
const (
	ColumnTodo        = "Todo"
	ColumnInProgress  = "In Progress"
	ColumnHumanReview = "Human Review"
	ColumnDone        = "Done"
	ColumnRedo        = "Redo"
)

// statusField caches the resolved Status field of one project: moving a
// card requires the field node id plus the target option id, and these
// never change within a process lifetime.
type statusField struct {
	fieldID string
	options map[string]string // lowercased option name -> option id
}

const projectFieldsQuery = `
query($projectId: ID!) {
  node(id: $projectId) {
    ... on ProjectV2 {
      fields(first: 50) {
        nodes {
          ... on ProjectV2SingleSelectField {
            id
            name
            options { id name }
          }
        }
      }
    }
  }
}`

const updateFieldMutation = `
mutation($projectId: ID!, $itemId: ID!, $fieldId: ID!, $optionId: String!) {
  updateProjectV2ItemFieldValue(input: {
    projectId: $projectId
    itemId: $itemId
    fieldId: $fieldId
    value: { singleSelectOptionId: $optionId }
  }) {
    projectV2Item { id }
  }
}`

const addItemMutation = `
mutation($projectId: ID!, $contentId: ID!) {
  addProjectV2ItemById(input: { projectId: $projectId, contentId: $contentId }) {
    item { id }
  }
}`

const projectItemQuery = `
query($itemId: ID!) {
  node(id: $itemId) {
    ... on ProjectV2Item {
      id
      project { id }
      fieldValueByName(name: "Status") {
        ... on ProjectV2ItemFieldSingleSelectValue { name }
      }
      content {
        ... on Issue {
          number
          title
          body
          repository { nameWithOwner databaseId }
        }
        ... on DraftIssue {
          title
          body
        }
      }
    }
  }
}`

// ProjectItem is one board card with its status and linked content.
type ProjectItem struct {
	ID                 string
	ProjectID          string
	Status             string
	Title              string
	Body               string
	IssueNumber        int
	RepositoryFullName string
	RepositoryID       int64
}

// GetProjectItem loads a board item's current status and content.
func (c *Client) GetProjectItem(ctx context.Context, installationID int64, itemID string) (*ProjectItem, error) {
	var data struct {
		Node struct {
			ID      string `json:"id"`
			Project struct {
				ID string `json:"id"`
			} `json:"project"`
			FieldValueByName struct {
				Name string `json:"name"`
			} `json:"fieldValueByName"`
			Content struct {
				Number     int    `json:"number"`
				Title      string `json:"title"`
				Body       string `json:"body"`
				Repository struct {
					NameWithOwner string `json:"nameWithOwner"`
					DatabaseID    int64  `json:"databaseId"`
				} `json:"repository"`
			} `json:"content"`
		} `json:"node"`
	}
	err := c.graphql(ctx, installationID, projectItemQuery, map[string]any{"itemId": itemID}, &data)
	if err != nil {
		return nil, fmt.Errorf("load project item %s: %w", itemID, err)
	}
	if data.Node.ID == "" {
		return nil, fmt.Errorf("project item %s not found", itemID)
	}
	return &ProjectItem{
		ID:                 data.Node.ID,
		ProjectID:          data.Node.Project.ID,
		Status:             data.Node.FieldValueByName.Name,
		Title:              data.Node.Content.Title,
		Body:               data.Node.Content.Body,
		IssueNumber:        data.Node.Content.Number,
		RepositoryFullName: data.Node.Content.Repository.NameWithOwner,
		RepositoryID:       data.Node.Content.Repository.DatabaseID,
	}, nil
}

// resolveStatusField finds the single-select "Status" field of the
// project and its option ids.
func (c *Client) resolveStatusField(ctx context.Context, installationID int64, projectID string) (statusField, error) {
	c.fieldMu.Lock()
	cached, ok := c.statusFields[projectID]
	c.fieldMu.Unlock()
	if ok {
		return cached, nil
	}

	var data struct {
		Node struct {
			Fields struct {
				Nodes []struct {
					ID      string `json:"id"`
					Name    string `json:"name"`
					Options []struct {
						ID   string `json:"id"`
						Name string `json:"name"`
					} `json:"options"`
				} `json:"nodes"`
			} `json:"fields"`
		} `json:"node"`
	}
	err := c.graphql(ctx, installationID, projectFieldsQuery, map[string]any{"projectId": projectID}, &data)
	if err != nil {
		return statusField{}, fmt.Errorf("resolve project fields: %w", err)
	}

	for _, field := range data.Node.Fields.Nodes {
		if !strings.EqualFold(field.Name, "Status") || field.ID == "" {
			continue
		}
		sf := statusField{fieldID: field.ID, options: map[string]string{}}
		for _, opt := range field.Options {
			sf.options[strings.ToLower(opt.Name)] = opt.ID
		}
		c.fieldMu.Lock()
		c.statusFields[projectID] = sf
		c.fieldMu.Unlock()
		return sf, nil
	}
	return statusField{}, fmt.Errorf("project %s has no Status field", projectID)
}

// MoveCard sets the project item's Status to the named column.
func (c *Client) MoveCard(ctx context.Context, installationID int64, projectID, itemID, column string) error {
	sf, err := c.resolveStatusField(ctx, installationID, projectID)
	if err != nil {
		return err
	}
	optionID, ok := sf.options[strings.ToLower(column)]
	if !ok {
		return fmt.Errorf("project %s has no %q status option", projectID, column)
	}
	err = c.graphql(ctx, installationID, updateFieldMutation, map[string]any{
		"projectId": projectID,
		"itemId":    itemID,
		"fieldId":   sf.fieldID,
		"optionId":  optionID,
	}, nil)
	if err != nil {
		return fmt.Errorf("move card %s to %s: %w", itemID, column, err)
	}
	c.logger.Info("Board card moved", "item_id", itemID, "column", column)
	return nil
}

// AddItemToProject adds existing content (issue, PR) to a project and
// returns the new item id.
func (c *Client) AddItemToProject(ctx context.Context, installationID int64, projectID, contentID string) (string, error) {
	var data struct {
		AddProjectV2ItemByID struct {
			Item struct {
				ID string `json:"id"`
			} `json:"item"`
		} `json:"addProjectV2ItemById"`
	}
	err := c.graphql(ctx, installationID, addItemMutation, map[string]any{
		"projectId": projectID,
		"contentId": contentID,
	}, &data)
	if err != nil {
		return "", fmt.Errorf("add item to project %s: %w", projectID, err)
	}
	return data.AddProjectV2ItemByID.Item.ID, nil
}
