package instance

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/noszanou/tsparse/internal/analyzer"
	"github.com/noszanou/tsparse/internal/packet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallDocument = `<?xml version="1.0" encoding="UTF-8"?>
<Definition>
  <Globals>
    <Name Value="Cave"></Name>
    <Label Value=""></Label>
    <LevelMinimum Value="1"></LevelMinimum>
    <LevelMaximum Value="10"></LevelMaximum>
    <Lives Value="1"></Lives>
    <DrawItems>
      <Item VNum="1" Amount="2"></Item>
    </DrawItems>
    <SpecialItems></SpecialItems>
    <GiftItems></GiftItems>
    <Gold Value="0"></Gold>
    <Reputation Value="50"></Reputation>
  </Globals>
  <InstanceEvents>
    <CreateMap Map="0" VNum="1002" IndexX="3" IndexY="4">
      <OnMoveOnMap>
        <SummonMonster VNum="50" PositionX="10" PositionY="6" Move="true" IsBonus="false" IsHostile="true">
          <OnDeath>
            <End Type="5"></End>
          </OnDeath>
        </SummonMonster>
      </OnMoveOnMap>
    </CreateMap>
  </InstanceEvents>
</Definition>
`

func smallModel() *analyzer.Model {
	return &analyzer.Model{
		Globals: analyzer.Globals{
			Found:        true,
			Name:         "Cave",
			LevelMinimum: 1,
			LevelMaximum: 10,
			DrawItems:    []packet.Item{{VNum: 1, Amount: 2}},
		},
		Maps: []*analyzer.Map{{
			VNum:   1002,
			IndexX: 3,
			IndexY: 4,
			Move: analyzer.Events{Monsters: []*analyzer.Monster{{
				VNum: 50, X: 10, Y: 6, Move: true, Hostile: true,
				OnDeath: analyzer.Events{Ends: []int32{5}},
			}}},
		}},
	}
}

func TestEncodeSmallDocument(t *testing.T) {
	cfg := globalsConfig()
	cfg.Gold = 0

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Build(smallModel(), cfg), "  "))
	assert.Equal(t, smallDocument, buf.String())
}

func TestEncodeIsDeterministic(t *testing.T) {
	m := analyzeLines(t,
		"rbr 1.0 4 15 5.20 1001.2 -1 -1 -1 0. 0 0 MyInstance",
		"at 7 1002 10 5 2 0 0 0",
		"in 9 1000 2001 10 12 0 1 0",
		"gp 14 1 2 0 1",
		"walk 10 6 0 5",
		"in 3 50 900 10 6 2 100 100 0",
		"out 3 900",
		"in 3 51 901 10 6 2 100 100 0",
		"mapclean",
		"gp 14 1 2 2 1",
		"at 7 1003 14 28 2 0 0 0",
		"evnt 1 0 3000 3000",
	)

	encode := func() []byte {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, Build(m, globalsConfig()), "\t"))
		return buf.Bytes()
	}
	first := encode()
	assert.Equal(t, first, encode())

	out := string(first)
	assert.Contains(t, out, `<Name Value="MyInstance"></Name>`)
	assert.Contains(t, out, `<SpawnButton Id="2001"`)
	assert.Contains(t, out, `<ChangePortalType IdOnMap="1" Type="2"></ChangePortalType>`)
	assert.Contains(t, out, `<GenerateClock Value="3000"></GenerateClock>`)
	assert.NotContains(t, out, "IsTarget")
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xml")
	doc := Build(smallModel(), globalsConfig())
	require.NoError(t, Save(path, doc, "  "))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	var want bytes.Buffer
	require.NoError(t, Encode(&want, doc, "  "))
	assert.Equal(t, want.Bytes(), got)
}

func TestSaveUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.xml")
	assert.Error(t, Save(path, Build(smallModel(), globalsConfig()), "  "))
}
