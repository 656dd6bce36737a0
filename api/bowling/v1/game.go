package bowlingv1

import (
	"fmt"
	"strconv"
	"time"

	"github.com/louisbranch/tenpin/internal/core/frame"
	"google.golang.org/protobuf/types/known/structpb"
)

// Frame is the wire view of one scored frame.
type Frame struct {
	Number  int
	Kind    string
	Rolls   []int
	Bonus   []int
	Score   int
	Running int
}

// Game is the wire view of a scored game. ID, Seed, Source, and Created are
// empty for games that were only scored.
type Game struct {
	ID       string
	Seed     int64
	Source   string
	Notation string
	Total    int
	Created  time.Time
	Frames   []Frame
}

// ToStruct encodes g as a response struct.
func (g Game) ToStruct() (*structpb.Struct, error) {
	frames := make([]any, 0, len(g.Frames))
	for _, f := range g.Frames {
		frames = append(frames, map[string]any{
			FieldNumber:  f.Number,
			FieldKind:    f.Kind,
			FieldRolls:   intList(f.Rolls),
			FieldBonus:   intList(f.Bonus),
			FieldScore:   f.Score,
			FieldRunning: f.Running,
		})
	}
	fields := map[string]any{
		FieldNotation: g.Notation,
		FieldTotal:    g.Total,
		FieldFrames:   frames,
	}
	if g.ID != "" {
		fields[FieldID] = g.ID
	}
	if g.Source != "" {
		fields[FieldSeed] = strconv.FormatInt(g.Seed, 10)
		fields[FieldSource] = g.Source
	}
	if !g.Created.IsZero() {
		fields[FieldCreated] = g.Created.UTC().Format(time.RFC3339Nano)
	}
	return structpb.NewStruct(fields)
}

// GamesToStruct encodes a ListGames response.
func GamesToStruct(games []Game) (*structpb.Struct, error) {
	values := make([]*structpb.Value, 0, len(games))
	for _, g := range games {
		encoded, err := g.ToStruct()
		if err != nil {
			return nil, err
		}
		values = append(values, structpb.NewStructValue(encoded))
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldGames: structpb.NewListValue(&structpb.ListValue{Values: values}),
	}}, nil
}

// GamesFromStruct decodes a ListGames response.
func GamesFromStruct(s *structpb.Struct) ([]Game, error) {
	if s == nil {
		return nil, fmt.Errorf("games struct is required")
	}
	values := s.GetFields()[FieldGames].GetListValue().GetValues()
	games := make([]Game, 0, len(values))
	for i, value := range values {
		game, err := GameFromStruct(value.GetStructValue())
		if err != nil {
			return nil, fmt.Errorf("game %d: %w", i, err)
		}
		games = append(games, game)
	}
	return games, nil
}

// GameFromStruct decodes a response struct produced by ToStruct.
func GameFromStruct(s *structpb.Struct) (Game, error) {
	if s == nil {
		return Game{}, fmt.Errorf("game struct is required")
	}
	fields := s.GetFields()
	game := Game{
		ID:       fields[FieldID].GetStringValue(),
		Source:   fields[FieldSource].GetStringValue(),
		Notation: fields[FieldNotation].GetStringValue(),
		Total:    int(fields[FieldTotal].GetNumberValue()),
	}
	if raw := fields[FieldSeed].GetStringValue(); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Game{}, fmt.Errorf("parse seed %q: %w", raw, err)
		}
		game.Seed = seed
	}
	if raw := fields[FieldCreated].GetStringValue(); raw != "" {
		created, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return Game{}, fmt.Errorf("parse created %q: %w", raw, err)
		}
		game.Created = created
	}
	for _, value := range fields[FieldFrames].GetListValue().GetValues() {
		f := value.GetStructValue().GetFields()
		game.Frames = append(game.Frames, Frame{
			Number:  int(f[FieldNumber].GetNumberValue()),
			Kind:    f[FieldKind].GetStringValue(),
			Rolls:   numberList(f[FieldRolls]),
			Bonus:   numberList(f[FieldBonus]),
			Score:   int(f[FieldScore].GetNumberValue()),
			Running: int(f[FieldRunning].GetNumberValue()),
		})
	}
	return game, nil
}

func intList(values []int) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func numberList(value *structpb.Value) []int {
	values := value.GetListValue().GetValues()
	if len(values) == 0 {
		return nil
	}
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = int(v.GetNumberValue())
	}
	return out
}

// NewGame builds the wire view of a scorecard.
func NewGame(notation string, card frame.Card) Game {
	game := Game{
		Notation: notation,
		Total:    card.Total,
		Frames:   make([]Frame, 0, len(card.Frames)),
	}
	for _, f := range card.Frames {
		game.Frames = append(game.Frames, Frame{
			Number:  f.Number,
			Kind:    f.Kind.String(),
			Rolls:   f.Rolls,
			Bonus:   f.Bonus,
			Score:   f.Score,
			Running: f.Total,
		})
	}
	return game
}
