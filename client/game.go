package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"onlinegame/object"
)

// ErrQuit is returned from Update when the player asks to quit or ctx is
// done.
var ErrQuit = errors.New("quit")

type Session interface {
	ID() string
	Assigned() (object.ID, bool)
	KeyDown(key string)
	KeyUp(key string)
	Step(surface object.Surface)
}

type movementKey struct {
	key  ebiten.Key
	name string
}

var movementKeys = []movementKey{
	{ebiten.KeyW, "w"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyD, "d"},
}

type Game struct {
	ctx     context.Context
	session Session
	margin  int
}

// NewGame hosts session in an ebiten window. The canvas is the window minus
// margin pixels on each axis.
func NewGame(ctx context.Context, session Session, margin int) *Game {
	return &Game{
		ctx:     ctx,
		session: session,
		margin:  margin,
	}
}

func (g *Game) Update() error {
	select {
	case <-g.ctx.Done():
		return ErrQuit
	default:
	}
	for _, k := range movementKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			g.session.KeyDown(k.name)
		}
		if inpututil.IsKeyJustReleased(k.key) {
			g.session.KeyUp(k.name)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}
	return nil
}

// Draw runs one session frame per rendered frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.session.Step(NewSurface(screen))
	ebitenutil.DebugPrint(screen, g.debugString())
}

func (g *Game) debugString() string {
	player := "observer"
	if ID, ok := g.session.Assigned(); ok {
		player = ID.String()
	}
	return strings.Join([]string{
		fmt.Sprintf("Version: %s, TPS: %0.02f, FPS: %0.02f", strings.TrimSpace(Version), ebiten.CurrentTPS(), ebiten.CurrentFPS()),
		fmt.Sprintf("Session: %s, Player: %s", g.session.ID(), player),
	}, "\n")
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return clamp(outsideWidth - g.margin), clamp(outsideHeight - g.margin)
}

func clamp(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
