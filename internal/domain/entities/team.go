package entities

import (
	"encoding/json"
	"slices"
)

// TeamMember is a person in a team's roster.
type TeamMember struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone,omitempty"`
}

// Team is a crew (equipe) that may be assigned to one project.
//
// The member count is always derived from MemberList; there is no stored
// counter that could drift from the roster.
type Team struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Color      string       `json:"color"`
	ProjectID  string       `json:"project_id,omitempty"`
	Leader     string       `json:"leader"`
	MemberList []TeamMember `json:"member_list"`
	Specialty  string       `json:"specialty"`
}

func (t Team) EntityID() string { return t.ID }

// Members returns the number of people in the roster.
func (t Team) Members() int { return len(t.MemberList) }

func (t Team) Clone() Team {
	t.MemberList = slices.Clone(t.MemberList)
	return t
}

// MarshalJSON adds the computed members count to the wire form.
func (t Team) MarshalJSON() ([]byte, error) {
	type plain Team
	return json.Marshal(struct {
		plain
		Members int `json:"members"`
	}{plain: plain(t), Members: t.Members()})
}

type NewTeam struct {
	Name       string
	Color      string
	ProjectID  string
	Leader     string
	MemberList []TeamMember
	Specialty  string
}

type NewTeamMember struct {
	Name  string
	Role  string
	Phone string
}

// TeamPatch holds a partial update. An empty ProjectID unassigns the team.
// The roster is changed only through member add/remove.
type TeamPatch struct {
	Name      *string
	Color     *string
	ProjectID *string
	Leader    *string
	Specialty *string
}

func (p TeamPatch) ApplyTo(t Team) Team {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Color != nil {
		t.Color = *p.Color
	}
	if p.ProjectID != nil {
		t.ProjectID = *p.ProjectID
	}
	if p.Leader != nil {
		t.Leader = *p.Leader
	}
	if p.Specialty != nil {
		t.Specialty = *p.Specialty
	}
	return t
}
