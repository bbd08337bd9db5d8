// ABOUTME: Runnable usage examples mirroring the documented call sequences
// ABOUTME: Backed by the scripted promptapitest host for deterministic output

package promptapi_test

import (
	"context"
	"fmt"

	"github.com/zivl/prompt-api-types/pkg/promptapi"
	"github.com/zivl/prompt-api-types/pkg/promptapitest"
)

func Example() {
	ctx := context.Background()
	var lm promptapi.LanguageModel = promptapitest.New()

	avail, _ := lm.Availability(ctx, nil)
	fmt.Println("availability:", avail)

	sess, _ := lm.Create(ctx, &promptapi.CreateOptions{
		InitialPrompts: []promptapi.Message{
			promptapi.TextMessage(promptapi.RoleSystem, "You are terse."),
		},
	})
	defer sess.Destroy()

	reply, _ := sess.Prompt(ctx, promptapi.Text("echo this back"), nil)
	fmt.Println("reply:", reply)

	// Output:
	// availability: available
	// reply: echo this back
}

func ExampleSession_promptStreaming() {
	ctx := context.Background()
	host := promptapitest.New()
	host.ChunkSize = 4

	sess, _ := host.Create(ctx, nil)
	defer sess.Destroy()

	stream, _ := sess.PromptStreaming(ctx, promptapi.Text("chunked"), nil)
	full, _ := stream.Collect(ctx)
	fmt.Println(full)

	// Output:
	// chunked
}

func ExampleSession_measureInputUsage() {
	ctx := context.Background()
	sess, _ := promptapitest.New().Create(ctx, nil)
	defer sess.Destroy()

	cost, _ := sess.MeasureInputUsage(ctx, promptapi.Text("12345678"), nil)
	fmt.Printf("cost: %g, usage: %g\n", cost, sess.InputUsage())

	// Output:
	// cost: 6, usage: 0
}
