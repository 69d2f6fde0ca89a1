package models

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Food is a single item inside a group
type Food struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Group is a named, ordered list of foods
type Group struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Foods []Food `json:"foods" yaml:"foods"`
}

func NewID() string {
	return uuid.NewString()
}

func NewFood(name string) Food {
	return Food{ID: NewID(), Name: name}
}

func NewGroup(title string, foods ...string) Group {
	g := Group{ID: NewID(), Title: title, Foods: make([]Food, 0, len(foods))}
	for _, name := range foods {
		g.Foods = append(g.Foods, NewFood(name))
	}
	return g
}

// Names returns the food names in order.
func (g Group) Names() []string {
	names := make([]string, len(g.Foods))
	for i, f := range g.Foods {
		names[i] = f.Name
	}
	return names
}

func (g Group) clone() Group {
	c := g
	c.Foods = make([]Food, len(g.Foods))
	copy(c.Foods, g.Foods)
	return c
}

// UnmarshalJSON accepts both {"id","name"} objects and bare strings, the
// latter being what older saves contain.
func (f *Food) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*f = NewFood(name)
		return nil
	}

	type plain Food
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("decoding food: %w", err)
	}
	if p.ID == "" {
		p.ID = NewID()
	}
	*f = Food(p)
	return nil
}

func (g *Group) UnmarshalJSON(data []byte) error {
	type plain Group
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("decoding group: %w", err)
	}
	if p.ID == "" {
		p.ID = NewID()
	}
	if p.Foods == nil {
		p.Foods = []Food{}
	}
	*g = Group(p)
	return nil
}

// SeedGroups returns the groups installed when nothing has been saved yet.
func SeedGroups() []Group {
	return []Group{
		NewGroup("日常吃飯", "便當", "麵食", "水餃"),
		NewGroup("貴一點，但很好吃", "火鍋", "咖哩", "拉麵", "生魚片", "丼飯"),
		NewGroup("不管了我是豬", "火鍋", "燒烤", "Buffet"),
	}
}
