package stabilizer_test

import (
	"fmt"

	"github.com/erraggy/fixturetools/fixture"
	"github.com/erraggy/fixturetools/stabilizer"
)

func ExampleStabilizer_StabilizeValue() {
	s := stabilizer.New()

	doc := map[string]any{
		"serverTime": "2024-06-01T12:00:00+09:00",
		"video": map[string]any{
			"title":        "My Video",
			"commentCount": map[string]any{"total": 57},
		},
	}

	out := s.StabilizeValue(doc).(map[string]any)
	video := out["video"].(map[string]any)
	counts := video["commentCount"].(map[string]any)

	fmt.Println(out["serverTime"])
	fmt.Println(video["title"])
	fmt.Println(counts["total"])
	// Output:
	// 2025-01-01T00:00:00+09:00
	// My Video
	// 1
}

func ExampleStabilizeWithOptions() {
	parsed, err := fixture.ParseWithOptions(
		fixture.WithBytes([]byte(`{"serverTime": "2024-06-01T12:00:00+09:00", "views": 4821, "requestId": "req-991"}`)),
		fixture.WithPreserveOrder(true),
	)
	if err != nil {
		fmt.Println("parse error:", err)
		return
	}

	result, err := stabilizer.StabilizeWithOptions(
		stabilizer.WithParsed(*parsed),
		stabilizer.WithExtraRules(stabilizer.Rule{
			Pattern:     "requestId",
			Replacement: "dummy-request-id",
		}),
	)
	if err != nil {
		fmt.Println("stabilize error:", err)
		return
	}

	data, err := result.ToParseResult().MarshalOrderedJSON()
	if err != nil {
		fmt.Println("marshal error:", err)
		return
	}

	fmt.Printf("%d changes\n", result.ChangeCount)
	fmt.Println(string(data))
	// Output:
	// 3 changes
	// {"serverTime":"2025-01-01T00:00:00+09:00","views":1,"requestId":"dummy-request-id"}
}

func ExampleStabilizeRecord() {
	type watchResponse struct {
		ServerTime string `json:"serverTime"`
		Views      int    `json:"views"`
	}

	record := watchResponse{
		ServerTime: "2024-06-01T12:00:00+09:00",
		Views:      4821,
	}

	stable, err := stabilizer.StabilizeRecord(stabilizer.New(), record)
	if err != nil {
		fmt.Println("stabilize error:", err)
		return
	}

	fmt.Println(stable.ServerTime)
	fmt.Println(stable.Views)
	// Output:
	// 2025-01-01T00:00:00+09:00
	// 1
}
