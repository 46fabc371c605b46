/*
This is an example of application that uses the engine package to load a
few assets through the pipeline and poll them to completion.
*/
package main

import (
	"os"

	"github.com/anvil-engine/anvil/engine"
	"github.com/anvil-engine/anvil/testbed"
)

func main() {
	config, err := engine.LoadConfig("anvil.toml")
	if err != nil {
		if !os.IsNotExist(err) {
			panic(err)
		}
		config = engine.DefaultConfig()
	}

	e, err := engine.New(config)
	if err != nil {
		panic(err)
	}

	game := testbed.NewTestGame(e,
		[]string{"cobblestone", "paving"},
		[]string{"cobblestone"},
	)

	if err := game.Run(); err != nil {
		panic(err)
	}

	if err := e.Shutdown(); err != nil {
		panic(err)
	}
}
