package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetDispatch(t *testing.T) {
	st := NewState()
	mp := &Map{}
	st.enterMap(mp)
	mon := &Monster{EntityID: 1}
	st.addMonster(mon, true)
	btn := &Button{ID: 2}
	mp.Buttons = append(mp.Buttons, btn)
	portal := &Portal{IdOnMap: 3}
	mp.Portals = append(mp.Portals, portal)

	assert.Same(t, &mp.Discover, st.Events(Target{Kind: TargetMap, Section: SectionDiscover}))
	assert.Same(t, &mp.Move, st.Events(Target{Kind: TargetMap}))
	clean := st.Events(Target{Kind: TargetMap, Section: SectionClean})
	assert.Same(t, mp.Move.Clean, clean)
	assert.Same(t, clean, st.Events(Target{Kind: TargetMap, Section: SectionClean}), "clean block is created once")

	assert.Same(t, &mon.OnDeath, st.Events(Target{Kind: TargetMonster, Index: 0}))
	assert.Same(t, &btn.FirstEnable, st.Events(Target{Kind: TargetButton, Index: 0}))
	assert.Same(t, btn.FirstEnable.clean(), st.Events(Target{Kind: TargetButton, Index: 0, Section: SectionClean}))
	assert.Same(t, &portal.OnTraversal, st.Events(Target{Kind: TargetPortal, Index: 0}))
}

func TestEventsEmpty(t *testing.T) {
	var nilEvents *Events
	assert.True(t, nilEvents.Empty())
	assert.True(t, (&Events{}).Empty())
	assert.True(t, (&Events{Clean: &Events{}}).Empty())
	assert.False(t, (&Events{Clean: &Events{marked: true}}).Empty())
	assert.False(t, (&Events{RefreshMapItems: true}).Empty())
	assert.False(t, (&Events{Ends: []int32{5}}).Empty())
}

func TestEnterMapResetsState(t *testing.T) {
	st := NewState()
	st.enterMap(&Map{})
	st.addMonster(&Monster{EntityID: 9}, true)
	st.phase = Moving
	st.firstEnable = 0
	st.firstEnableClean = true
	st.lastDead = 0
	st.seenButtons[4] = true

	st.enterMap(&Map{Ordinal: 1})
	assert.Equal(t, Discovering, st.Phase())
	assert.False(t, st.FirstEnableActive())
	assert.Equal(t, 0, st.MapMonsterCount())
	assert.Empty(t, st.seenButtons)
	_, ok := st.LastDeadMonster()
	assert.False(t, ok)

	// the run-wide table keeps every monster
	assert.Len(t, st.Monsters(), 1)
	idx, ok := st.monsterByEntity(9)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "Discovering", Discovering.String())
	assert.Equal(t, "Moving", Moving.String())
	assert.Equal(t, "Button", TargetButton.String())
	assert.Equal(t, "Unknown", TargetKind(42).String())
}
