package voxel

import "testing"

func TestMakeBlockRoundTrip(t *testing.T) {
	for id := 0; id < 256; id += 17 {
		for data := 0; data < 64; data += 9 {
			b := MakeBlock(uint8(id), uint8(data))
			if b.ID() != uint8(id) {
				t.Fatalf("ID() = %d, want %d", b.ID(), id)
			}
			if b.Data() != uint8(data) {
				t.Fatalf("Data() = %d, want %d", b.Data(), data)
			}
		}
	}
}

func TestOcclusionRule(t *testing.T) {
	opaque := MakeBlock(0x40, 0) // MinSolid -> solid opaque
	translucentA := MakeBlock(0xFD, 1)
	translucentB := MakeBlock(0xFD, 1)
	translucentOther := MakeBlock(0xFD, 2)

	if !Occludes(VOID, opaque) {
		t.Fatal("void neighbor must occlude (closed chunk boundary)")
	}
	if !Occludes(opaque, opaque) {
		t.Fatal("opaque neighbor must occlude")
	}
	if !Occludes(translucentA, translucentB) {
		t.Fatal("same-class translucent neighbors must occlude each other")
	}
	if Occludes(translucentA, translucentOther) {
		t.Fatal("different-class translucent neighbors must not occlude")
	}
	if Occludes(AIR, opaque) {
		t.Fatal("invisible neighbor must not occlude (air is not void)")
	}
}

func TestKindBoundaries(t *testing.T) {
	cases := []struct {
		id   uint16
		want Kind
	}{
		{0x0000, KindInvisible},
		{MaxInvisible, KindInvisible},
		{MaxInvisible + 1, KindTranslucentLiquid},
		{MaxTLiquid, KindTranslucentLiquid},
		{MinOLiquid, KindOpaqueLiquid},
		{MinSolid - 1, KindOpaqueLiquid},
		{MinSolid, KindSolidOpaque},
		{MinTransparent - 1, KindSolidOpaque},
		{MinTransparent, KindSolidTranslucent},
		{0xFFFF, KindSolidTranslucent},
	}
	for _, c := range cases {
		if got := KindOf(Block(c.id)); got != c.want {
			t.Errorf("KindOf(0x%04X) = %v, want %v", c.id, got, c.want)
		}
	}
}
