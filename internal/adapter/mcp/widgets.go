package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	petWidgetURI          = "ui://widget/pet.html"
	achievementsWidgetURI = "ui://widget/achievements.html"
	widgetMIMEType        = "text/html+skybridge"

	petWidgetHTML = `<div id="pet-root"></div>
<link rel="stylesheet" href="https://chatagotchi-jet.vercel.app/pet.css">
<script type="module" src="https://chatagotchi-jet.vercel.app/pet.js"></script>`

	achievementsWidgetHTML = `<div id="achievements-root"></div>
<link rel="stylesheet" href="https://chatagotchi-jet.vercel.app/achievements.css">
<script type="module" src="https://chatagotchi-jet.vercel.app/achievements.js"></script>`
)

// PetWidgetResource declares the embeddable pet status micro-UI.
func PetWidgetResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "pet-status",
		Description: "Renders a micro-UI showing the user's pet status",
		MIMEType:    widgetMIMEType,
		URI:         petWidgetURI,
	}
}

// AchievementsWidgetResource declares the embeddable achievements micro-UI.
func AchievementsWidgetResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "achievements-widget",
		Description: "Renders a micro-UI showing the user's achievements",
		MIMEType:    widgetMIMEType,
		URI:         achievementsWidgetURI,
	}
}

func staticWidgetHandler(uri, html string) mcp.ResourceHandler {
	return func(_ context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      uri,
					MIMEType: widgetMIMEType,
					Text:     html,
				},
			},
		}, nil
	}
}
