package client

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/wuxing-api/internal/errors"
	"github.com/KirkDiggler/wuxing-api/internal/handlers/wuxing/v1alpha1"
)

type argKind int

const (
	argString argKind = iota
	argInt
)

type argSpec struct {
	field string
	kind  argKind
}

// commandSpec maps a subcommand onto a service method. Positional args
// fill the request fields in order; the player ID always comes first.
type commandSpec struct {
	use    string
	short  string
	method string
	args   []argSpec
}

var playerArg = argSpec{field: v1alpha1.FieldPlayerID}

var commandSpecs = []commandSpec{
	{use: "init-player", short: "Create a new player", method: v1alpha1.MethodInitPlayer,
		args: []argSpec{playerArg}},
	{use: "state", short: "Show a player's game state", method: v1alpha1.MethodGetState,
		args: []argSpec{playerArg}},
	{use: "start-adventure", short: "Enter battle at the current position", method: v1alpha1.MethodStartAdventure,
		args: []argSpec{playerArg}},
	{use: "select-element", short: "Commit an element to the next round", method: v1alpha1.MethodSelectPlayerElement,
		args: []argSpec{playerArg, {field: v1alpha1.FieldElement}}},
	{use: "reveal", short: "Reveal an opponent slot", method: v1alpha1.MethodRevealOpponent,
		args: []argSpec{playerArg, {field: v1alpha1.FieldSlotIndex, kind: argInt}}},
	{use: "claim", short: "Claim the reward of a won round", method: v1alpha1.MethodSelectWinningRound,
		args: []argSpec{playerArg, {field: v1alpha1.FieldRoundIndex, kind: argInt}}},
	{use: "reverse", short: "Spend currency to reverse a lost round", method: v1alpha1.MethodUseCurrencyToReverse,
		args: []argSpec{playerArg, {field: v1alpha1.FieldRoundIndex, kind: argInt}, {field: v1alpha1.FieldCurrency}}},
	{use: "replenish", short: "Top up low elements from yin", method: v1alpha1.MethodReplenishElements,
		args: []argSpec{playerArg}},
	{use: "return-to-spawn", short: "Walk back to the spawn point", method: v1alpha1.MethodReturnToSpawn,
		args: []argSpec{playerArg}},
	{use: "reset", short: "Reset the player to a fresh game", method: v1alpha1.MethodResetGame,
		args: []argSpec{playerArg}},
	{use: "upgrade-skill", short: "Upgrade an element skill branch", method: v1alpha1.MethodUpgradeSkill,
		args: []argSpec{playerArg, {field: v1alpha1.FieldElement}, {field: v1alpha1.FieldBranch}}},
	{use: "can-start", short: "Check whether an adventure can start", method: v1alpha1.MethodCanStartAdventure,
		args: []argSpec{playerArg}},
	{use: "skill-cost", short: "Show the cost of the next skill upgrade", method: v1alpha1.MethodGetSkillUpgradeCost,
		args: []argSpec{playerArg, {field: v1alpha1.FieldElement}, {field: v1alpha1.FieldBranch}}},
}

func newCallCmd(spec commandSpec) *cobra.Command {
	use := spec.use
	for _, a := range spec.args {
		use += " [" + a.field + "]"
	}
	return &cobra.Command{
		Use:   use,
		Short: spec.short,
		Args:  cobra.ExactArgs(len(spec.args)),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := buildRequest(spec, args)
			if err != nil {
				return err
			}
			return call(cmd.OutOrStdout(), spec.method, req)
		},
	}
}

// buildRequest turns positional args into a request document
func buildRequest(spec commandSpec, args []string) (*structpb.Struct, error) {
	if len(args) != len(spec.args) {
		return nil, errors.InvalidArgumentf("%s takes %d arguments, got %d", spec.use, len(spec.args), len(args))
	}
	fields := make(map[string]any, len(args))
	for i, a := range spec.args {
		switch a.kind {
		case argInt:
			n, err := strconv.Atoi(args[i])
			if err != nil {
				return nil, errors.InvalidArgumentf("%s must be an integer: %q", a.field, args[i])
			}
			fields[a.field] = n
		default:
			fields[a.field] = args[i]
		}
	}
	req, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build request")
	}
	return req, nil
}

func call(w io.Writer, method string, req *structpb.Struct) error {
	client, cleanup, err := createGameClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Call(ctx, method, req)
	if err != nil {
		appErr := errors.FromGRPCError(err)
		if reason := errors.GetReason(appErr); reason != "" {
			return fmt.Errorf("%s failed [%s/%s]: %s", method, errors.GetCode(appErr), reason, errors.GetMessage(appErr))
		}
		return fmt.Errorf("%s failed [%s]: %s", method, errors.GetCode(appErr), errors.GetMessage(appErr))
	}

	return printResponse(w, resp)
}

func printResponse(w io.Writer, resp *structpb.Struct) error {
	if evs, ok := resp.GetFields()["events"]; ok {
		for _, ev := range evs.GetListValue().GetValues() {
			f := ev.GetStructValue().GetFields()
			_, _ = fmt.Fprintf(w, "• %-20s %s\n", f["type"].GetStringValue(), f["summary"].GetStringValue())
		}
	}

	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return errors.Wrapf(err, "failed to render response")
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
