// Command stenoengine is a minimal driver for the translation core: it
// wires a steno system, a two-tier dictionary collection and a translator,
// feeds a scripted stroke sequence through it, and logs the resulting
// translation stream. It also exercises the orthography joiner directly,
// since real suffix joining happens downstream of the translator in a
// formatter this module does not implement.
package main

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/stenoforge/steno-translate/pkg/dictionary"
	"github.com/stenoforge/steno-translate/pkg/orthography"
	"github.com/stenoforge/steno-translate/pkg/steno"
	"github.com/stenoforge/steno-translate/pkg/translator"
)

func main() {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.EncoderConfig.TimeKey = ""
	logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logConfig.DisableStacktrace = true
	logConfig.DisableCaller = true
	log := zap.Must(logConfig.Build())
	defer log.Sync()
	log = log.Named("stenoengine")

	sys, err := steno.NewEnglishStenoSystem()
	if err != nil {
		log.Fatal("build steno system", zap.Error(err))
	}
	factory := steno.NewChordFactory(sys)

	catStroke := factory.FromKeys([]string{"K-", "A", "-T"})
	ingStroke := factory.FromKeys([]string{"-G"})
	undoStroke := steno.NewChord(sys.UndoStrokeSteno, []string{sys.UndoStrokeSteno}, true)

	main := dictionary.New("main.json")
	if err := main.BulkUpdate([]dictionary.KV{
		{Key: dictionary.NewKey(catStroke.RTFCRE()), Text: "cat"},
		{Key: dictionary.NewKey(ingStroke.RTFCRE()), Text: "{^ing}"},
	}); err != nil {
		log.Fatal("seed main dictionary", zap.Error(err))
	}
	main.Readonly = true
	user := dictionary.New("user.json")

	dicts := dictionary.NewCollection(user, main)
	macros := translator.NewMacroRegistry()
	trans := translator.New(dicts, sys, factory, macros, log.Named("translator"))
	defer trans.Close()

	handle := trans.AddListener(func(undo, do, prev []*translator.Record) {
		for _, r := range undo {
			log.Info("undo", zap.String("key", string(r.Key)))
		}
		for _, r := range do {
			text := r.DisplayText()
			if !r.HasText {
				text = fmt.Sprintf("{steno:%s}", outline(r))
			}
			log.Info("translated", zap.String("key", string(r.Key)), zap.String("text", text), zap.Int("prev_len", len(prev)))
		}
	})
	defer trans.RemoveListener(handle)

	for _, stroke := range []steno.Stroke{catStroke, ingStroke, undoStroke} {
		if err := trans.Translate(stroke); err != nil {
			log.Error("translate", zap.String("stroke", stroke.RTFCRE()), zap.Error(err))
		}
	}

	join := orthography.New(sys)
	log.Info("orthography demo",
		zap.String("run+ing", join.AddSuffix("run", "ing")),
		zap.String("like+ing", join.AddSuffix("like", "ing")),
		zap.String("try+ed", join.AddSuffix("try", "ed")),
	)
}

func outline(r *translator.Record) string {
	parts := make([]string, len(r.Strokes))
	for i, s := range r.Strokes {
		parts[i] = s.RTFCRE()
	}
	return strings.Join(parts, "/")
}
