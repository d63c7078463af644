// Package console is the interactive, letter keyed pizza menu.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"

	"pizzamanager/domain/pizza"
	"pizzamanager/domain/pizzamanager"
	"pizzamanager/pkg/rational"
)

const hundred = 100

const instructions = `-----------------------
Welcome to PizzaManager
-----------------------
(A)dd a random pizza
Add a (H)undred random pizzas
(E)at a fraction of a pizza
Sort pizzas by (P)rice
Sort pizzas by (S)ize
Sort pizzas by (C)alories
(B)inary Search pizzas by calories
(Q)uit
`

type Command struct {
	Seed           int64 `flag:"seed" env:"PIZZA_SEED" desc:"seed of the random pizza generator, zero picks a random seed"`
	MaxIngredients int   `flag:"max-ingredients" env:"PIZZA_MAX_INGREDIENTS" desc:"upper limit of ingredients on a random pizza"`
	Quiet          bool  `flag:"quiet" desc:"don't list the pizzas before each menu"`
}

func (cmd Command) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := r.Context()
	if cmd.MaxIngredients < 0 {
		w.ExitCode(cli.ExitCodeBadRequest)
		fmt.Fprintf(w, "invalid max-ingredients: %d\n", cmd.MaxIngredients)
		return
	}
	seed := uint64(cmd.Seed)
	if seed == 0 {
		seed = rand.Uint64()
	}
	ctx = logging.ContextWith(ctx, logging.Field("seed", seed))
	s := &session{
		out:   w,
		in:    bufio.NewScanner(r.Body),
		quiet: cmd.Quiet,
		manager: pizzamanager.New(pizza.Generator{
			Random:         rand.New(rand.NewPCG(seed, seed)),
			MaxIngredients: cmd.MaxIngredients,
		}),
	}
	if err := s.Run(ctx); err != nil {
		logger.Error(ctx, "pizza manager session failed", logging.ErrField(err))
		w.ExitCode(cli.ExitCodeError)
		fmt.Fprintln(w, err.Error())
	}
}

type session struct {
	out     io.Writer
	in      *bufio.Scanner
	manager *pizzamanager.Manager
	quiet   bool
}

// Run serves the menu until the user quits or the input is exhausted.
func (s *session) Run(ctx context.Context) error {
	logger.Debug(ctx, "pizza manager session started")
	defer logger.Debug(ctx, "pizza manager session ended")
	for {
		if !s.quiet {
			if err := s.listPizzas(); err != nil {
				return err
			}
		}
		s.println(instructions)

		line, ok := s.readLine()
		if !ok {
			return s.in.Err()
		}
		var option byte
		if 0 < len(line) {
			option = line[0]
		}
		switch option {
		case 'A', 'a':
			s.println("Adding a random pizza to the list.")
			s.addRandom(ctx, 1)
		case 'H', 'h':
			s.println("Adding one hundred random pizzas to the list.")
			s.addRandom(ctx, hundred)
		case 'E', 'e':
			s.eat(ctx)
		case 'P', 'p':
			s.println("Sorting pizzas by (P)rice")
			s.sort(ctx, pizza.ByPrice)
		case 'S', 's':
			s.println("Sorting pizzas by (S)ize")
			s.sort(ctx, pizza.BySize)
		case 'C', 'c':
			s.println("Sorting pizzas by (C)alories")
			s.sort(ctx, pizza.ByCalories)
		case 'B', 'b':
			s.search(ctx)
		case 'Q', 'q':
			s.println("(Q)uitting!")
			return nil
		default:
			s.println("Unrecognized input - try again")
		}
	}
}

func (s *session) addRandom(ctx context.Context, n int) {
	before := s.manager.Len()
	added, err := s.manager.AddRandom(ctx, n)
	if err != nil {
		s.printf("%d of %d pizzas could not be added: %s\n", n-added, n, err.Error())
	}
	if n == 1 && added == 1 {
		if p, err := s.manager.Get(before); err == nil {
			s.printf("%s", p)
		}
	}
}

func (s *session) eat(ctx context.Context) {
	if s.manager.Len() == 0 {
		s.println("There are currently no pizzas to be eaten.")
		return
	}
	s.printf("Please enter the index of the pizza you would like to eat from (valid indexes: 0-%d):\n", s.manager.Len()-1)
	line, ok := s.readLine()
	if !ok {
		return
	}
	index, err := strconv.Atoi(line)
	if err != nil {
		s.printf("%q is not a valid index.\n", line)
		return
	}
	p, err := s.manager.Get(index)
	if err != nil {
		s.printf("%d is not a valid index.\n", index)
		return
	}

	s.printf("\nPlease enter the fractional amount of pizza you would like to eat from the remaining %s (format a/b):\n", p.Remaining())
	line, ok = s.readLine()
	if !ok {
		return
	}
	if !strings.Contains(line, "/") {
		s.printf("%q is not valid input.\n", line)
		return
	}
	amount, err := rational.Parse(line)
	if err != nil {
		s.printf("Could not parse a valid fraction from %q. Please try again.\n", line)
		return
	}
	res, err := s.manager.Eat(ctx, index, amount)
	if err != nil {
		s.println(eatErrorMessage(err))
		return
	}
	if res.Finished {
		s.println("The pizza is finished and removed from the list.")
		return
	}
	s.printf("Ate %s, %s remains.\n", res.Eaten, res.Remaining)
}

func eatErrorMessage(err error) string {
	switch {
	case errors.Is(err, pizza.ErrInvalidAmount):
		return "Cannot eat a negative amount of pizza."
	case errors.Is(err, pizza.ErrNothingLeft):
		return "Cannot eat any amount from a pizza that has nothing left."
	case errors.Is(err, pizza.ErrTooMuch):
		return "Cannot eat more than the amount of pizza that remains."
	default:
		return err.Error()
	}
}

func (s *session) sort(ctx context.Context, c pizza.Criterion) {
	if err := s.manager.SortBy(ctx, c); err != nil {
		s.println(err.Error())
	}
}

func (s *session) search(ctx context.Context) {
	s.println("(B)inary search over pizzas by calories(int).  Sorting first.  What calorie count are you looking for?")
	line, ok := s.readLine()
	if !ok {
		return
	}
	calories, err := strconv.Atoi(line)
	if err != nil {
		s.println("Invalid number of calories.")
		return
	}
	index, found, err := s.manager.SearchByCalories(ctx, calories)
	switch {
	case errors.Is(err, pizzamanager.ErrInvalidArgument):
		s.printf("%d is an invalid number of calories.\n", calories)
	case err != nil:
		s.println(err.Error())
	case !found:
		s.printf("Could not find a pizza with %d calories.\n", calories)
	default:
		s.printf("Found a pizza with %d calories at index = %d\n", calories, index)
	}
}

func (s *session) listPizzas() error {
	if s.manager.Len() == 0 {
		return nil
	}
	table := [][]string{{"#", "NAME", "COST", "CALORIES", "SIZE", "REMAINING", "SHAPE"}}
	for i, p := range s.manager.Pizzas() {
		table = append(table, []string{
			strconv.Itoa(i),
			p.Name,
			p.Cost().String(),
			strconv.Itoa(p.Calories()),
			strconv.FormatFloat(p.RemainingArea(), 'f', 2, 64),
			p.Remaining().String(),
			p.Shape().String(),
		})
	}
	return cli.FPrintTable(s.out, table, cli.TablePadding(2))
}

func (s *session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *session) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

func (s *session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
