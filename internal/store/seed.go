// Package store holds the built-in dataset the dashboard starts with.
package store

import (
	"time"

	"github.com/idilsaglam/notepad/internal/model"
)

const lorem1 = "Lorem ipsum dolor sit amet, consectetur adipiscing elit. Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua."
const lorem2 = "Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat."

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// DefaultCards returns a fresh copy of the mock cards.
func DefaultCards() []model.Item {
	return []model.Item{
		{ID: 1, Name: "Card 1", Posted: "2h ago", Date: date(2024, time.October, 15),
			Text: "This is the content of card 1. It provides more details about the item. " + lorem1},
		{ID: 2, Name: "Card 2", Posted: "3h ago", Date: date(2024, time.October, 10),
			Text: "This is the content of card 2. It describes the features of the product. " + lorem2},
		{ID: 3, Name: "Card 3", Posted: "4h ago", Date: date(2024, time.September, 25),
			Text: "This is the content of card 3. It highlights the benefits of the service. Duis aute irure dolor in reprehenderit in voluptate velit esse cillum dolore eu fugiat nulla pariatur."},
		{ID: 4, Name: "Card 4", Posted: "5h ago", Date: date(2024, time.September, 20),
			Text: "This is the content of card 4. It explains the usage of the item. Excepteur sint occaecat cupidatat non proident, sunt in culpa qui officia deserunt mollit anim id est laborum."},
		{ID: 5, Name: "Card 5", Posted: "6h ago", Date: date(2024, time.August, 5),
			Text: "This is the content of card 5. It showcases the unique aspects of the product. Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua."},
		{ID: 6, Name: "Card 6", Posted: "7h ago", Date: date(2024, time.July, 30),
			Text: "This is the content of card 6. It provides additional information about the service. " + lorem2},
	}
}

func folder(name string, children ...model.Node) model.Node {
	return model.Node{Name: name, Kind: model.KindFolder, Children: children}
}

func file(name string) model.Node { return model.Node{Name: name, Kind: model.KindFile} }

// DefaultTree returns the mock project tree shown in the explorer.
func DefaultTree() []model.Node {
	return []model.Node{
		folder("project",
			folder("src",
				folder("components", file("Button.tsx"), file("Card.tsx")),
				folder("pages", file("index.tsx"), file("about.tsx")),
				folder("styles", file("globals.css")),
			),
			folder("public", file("favicon.ico")),
			file("package.json"),
			file("tsconfig.json"),
		),
	}
}

// Default is the dataset used when no data file is configured.
func Default() model.Dataset {
	return model.Dataset{Cards: DefaultCards(), Tree: DefaultTree()}
}
