// Package input turns command lines typed by the user into structured
// requests for the controller.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/budget-tracker/internal/controller"
	"github.com/sheikh-saqib/budget-tracker/internal/models"
)

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrMalformedCommand = errors.New("malformed command")
)

// Amounts beyond these bounds are rejected before they reach formatting,
// which would otherwise expand the exponent into a string of that length.
const (
	maxAmountIntDigits = 15
	minAmountExponent  = -32
)

type Kind int

const (
	KindAdd Kind = iota + 1
	KindDelete
	KindChangeType
	KindShow
	KindHelp
	KindQuit
)

// Command is one parsed line. Add is set for KindAdd, Ref for KindDelete.
type Command struct {
	Kind Kind
	Add  controller.AddRequest
	Ref  models.ItemRef
}

const Usage = `commands:
  add [inc|exp] <description> <amount>   add an item (type defaults to the selected one)
  del <inc|exp> <id> | del <inc|exp>-<id> delete an item
  type                                   switch between income and expense
  show                                   print the budget
  help                                   print this help
  quit                                   exit`

// Parse reads one command line. defaultType is used when "add" omits the
// type. Description and amount are only checked for shape here; the
// controller decides whether they are acceptable.
func Parse(line string, defaultType models.EntryType) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty line", ErrMalformedCommand)
	}

	switch strings.ToLower(fields[0]) {
	case "add", "a":
		return parseAdd(fields[1:], defaultType)
	case "del", "delete", "rm":
		return parseDelete(fields[1:])
	case "type", "t":
		return Command{Kind: KindChangeType}, nil
	case "show", "ls":
		return Command{Kind: KindShow}, nil
	case "help", "?":
		return Command{Kind: KindHelp}, nil
	case "quit", "exit", "q":
		return Command{Kind: KindQuit}, nil
	}
	return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
}

func parseAdd(args []string, defaultType models.EntryType) (Command, error) {
	entryType := defaultType
	if len(args) > 0 {
		if t, err := models.ParseEntryType(strings.ToLower(args[0])); err == nil {
			entryType = t
			args = args[1:]
		}
	}
	if len(args) == 0 {
		return Command{}, fmt.Errorf("%w: add needs an amount", ErrMalformedCommand)
	}

	raw := args[len(args)-1]
	amount, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
	if err != nil {
		return Command{}, fmt.Errorf("%w: amount %q is not a number", ErrMalformedCommand, raw)
	}
	if !amountInRange(amount) {
		return Command{}, fmt.Errorf("%w: amount %q is out of range", ErrMalformedCommand, raw)
	}

	return Command{
		Kind: KindAdd,
		Add: controller.AddRequest{
			Type:        entryType,
			Description: strings.Join(args[:len(args)-1], " "),
			Amount:      amount,
		},
	}, nil
}

// amountInRange reports whether amount has at most maxAmountIntDigits digits
// before the decimal point and no exponent below minAmountExponent. It only
// inspects the exponent and mantissa so huge exponents are never expanded.
func amountInRange(amount decimal.Decimal) bool {
	exp := int(amount.Exponent())
	if exp > maxAmountIntDigits || exp < minAmountExponent {
		return false
	}
	return amount.NumDigits()+exp <= maxAmountIntDigits
}

func parseDelete(args []string) (Command, error) {
	var typ, id string
	switch len(args) {
	case 1:
		parts := strings.SplitN(args[0], "-", 2)
		if len(parts) != 2 {
			return Command{}, fmt.Errorf("%w: expected <type>-<id>, got %q", ErrMalformedCommand, args[0])
		}
		typ, id = parts[0], parts[1]
	case 2:
		typ, id = args[0], args[1]
	default:
		return Command{}, fmt.Errorf("%w: del takes a type and an id", ErrMalformedCommand)
	}

	entryType, err := models.ParseEntryType(strings.ToLower(typ))
	if err != nil {
		return Command{}, fmt.Errorf("%w: %v", ErrMalformedCommand, err)
	}
	n, err := strconv.Atoi(id)
	if err != nil {
		return Command{}, fmt.Errorf("%w: id %q is not a number", ErrMalformedCommand, id)
	}
	return Command{Kind: KindDelete, Ref: models.ItemRef{Type: entryType, ID: n}}, nil
}
