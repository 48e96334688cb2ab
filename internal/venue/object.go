package venue

import (
	"encoding/json"
	"fmt"
)

// Object is the closed union of things that can be placed on a tier:
// a Section or a Stage. Consumers dispatch with a type switch; the
// unexported method keeps the union closed.
type Object interface {
	ObjectID() string
	ObjectLabel() string
	placeable()
}

func (s *Section) ObjectID() string    { return s.ID }
func (s *Section) ObjectLabel() string { return s.Label }
func (s *Section) placeable()          {}

func (st *Stage) ObjectID() string    { return st.ID }
func (st *Stage) ObjectLabel() string { return st.Label }
func (st *Stage) placeable()          {}

// stageTypeTag is the discriminator value stages carry on the wire.
// Sections use their SectionKind directly.
const stageTypeTag = "stage"

// MarshalJSON writes the tier with each object tagged by its type.
func (t *Tier) MarshalJSON() ([]byte, error) {
	raw := make([]json.RawMessage, 0, len(t.Objects))
	for _, obj := range t.Objects {
		var (
			data []byte
			err  error
		)
		switch o := obj.(type) {
		case *Section:
			data, err = json.Marshal(o)
		case *Stage:
			data, err = json.Marshal(struct {
				Type string `json:"type"`
				*Stage
			}{Type: stageTypeTag, Stage: o})
		default:
			err = fmt.Errorf("unknown object type %T", obj)
		}
		if err != nil {
			return nil, err
		}
		raw = append(raw, data)
	}

	type alias struct {
		ID        string            `json:"id"`
		Name      string            `json:"name"`
		Elevation float64           `json:"elevation"`
		Objects   []json.RawMessage `json:"objects"`
	}
	return json.Marshal(alias{ID: t.ID, Name: t.Name, Elevation: t.Elevation, Objects: raw})
}

// UnmarshalJSON reads a tier, dispatching each object on its "type" tag.
func (t *Tier) UnmarshalJSON(data []byte) error {
	var alias struct {
		ID        string            `json:"id"`
		Name      string            `json:"name"`
		Elevation float64           `json:"elevation"`
		Objects   []json.RawMessage `json:"objects"`
	}
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	t.ID = alias.ID
	t.Name = alias.Name
	t.Elevation = alias.Elevation
	t.Objects = make([]Object, 0, len(alias.Objects))

	for _, raw := range alias.Objects {
		var tag struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(raw, &tag); err != nil {
			return err
		}

		switch tag.Type {
		case string(KindCurved), string(KindStraight):
			var sec Section
			if err := json.Unmarshal(raw, &sec); err != nil {
				return err
			}
			t.Objects = append(t.Objects, &sec)
		case stageTypeTag:
			var st Stage
			if err := json.Unmarshal(raw, &st); err != nil {
				return err
			}
			t.Objects = append(t.Objects, &st)
		default:
			return fmt.Errorf("unknown object type %q", tag.Type)
		}
	}
	return nil
}
