package entity

// Game is the catalog entry a loan points at. The catalog owns it; loans only reference it.
type Game struct {
	ID           int64
	Title        string
	Age          int
	CategoryName string
	AuthorName   string
}

func (g *Game) field(path string) (any, bool) {
	switch path {
	case "game.title":
		return g.Title, true
	case "game.age":
		return g.Age, true
	case "game.category":
		return g.CategoryName, true
	case "game.author":
		return g.AuthorName, true
	default:
		return nil, false
	}
}

// Client is a registered borrower.
type Client struct {
	ID   int64
	Name string
}

func (c *Client) field(path string) (any, bool) {
	if path == "client.name" {
		return c.Name, true
	}

	return nil, false
}
