package defaults

import (
	"github.com/seitarof/gen-manipulator/internal/model"
	"github.com/seitarof/gen-manipulator/internal/typeres"
)

// DefaultRules returns built-in rules in priority order.
func DefaultRules() []Rule {
	return []Rule{
		NewTableRule(BuiltinTable()),
		NewZeroConstantRule(ZeroConstantTypes()...),
	}
}

// Table maps a qualified type head (or primitive code) to its default.
type Table map[string]Default

// TableRule looks the field's qualified head up in a Table.
type TableRule struct {
	table Table
}

// NewTableRule creates a rule backed by table.
func NewTableRule(table Table) *TableRule {
	return &TableRule{table: table}
}

func (r *TableRule) Name() string { return "table" }

func (r *TableRule) Try(f model.KeyedField) (Default, bool) {
	d, ok := r.table[f.QualifiedHead]
	return d, ok
}

// ZeroConstantRule defaults value types exposing a static ZERO constant.
type ZeroConstantRule struct {
	types map[string]bool
}

// NewZeroConstantRule creates a rule for the given qualified type names.
func NewZeroConstantRule(types ...string) *ZeroConstantRule {
	set := make(map[string]bool, len(types))
	for _, t := range types {
		set[t] = true
	}
	return &ZeroConstantRule{types: set}
}

func (r *ZeroConstantRule) Name() string { return "zero-constant" }

func (r *ZeroConstantRule) Try(f model.KeyedField) (Default, bool) {
	if !r.types[f.QualifiedHead] {
		return Default{}, false
	}
	return Default{Expr: typeres.SimpleName(f.QualifiedHead) + ".ZERO"}, true
}

// ZeroConstantTypes lists the numeric and vector types with a ZERO constant.
func ZeroConstantTypes() []string {
	return []string{
		"java.math.BigDecimal",
		"java.math.BigInteger",
		"com.flowpowered.math.vector.Vector2i",
		"com.flowpowered.math.vector.Vector2l",
		"com.flowpowered.math.vector.Vector2d",
		"com.flowpowered.math.vector.Vector3i",
		"com.flowpowered.math.vector.Vector3l",
		"com.flowpowered.math.vector.Vector3d",
	}
}

const collections = "java.util.Collections"

// BuiltinTable returns a fresh copy of the built-in default table.
func BuiltinTable() Table {
	t := Table{
		"I": {Expr: "0"},
		"D": {Expr: "0.0d"},
		"F": {Expr: "0.0f"},
		"L": {Expr: "0L"},
		"Z": {Expr: "false"},
		"S": {Expr: "0"},
		"B": {Expr: "0"},
		"C": {Expr: `'\u0000'`},

		"String":           {Expr: `""`},
		"java.lang.String": {Expr: `""`},

		"java.util.List": {Expr: "Collections.emptyList()", Imports: []string{collections}},
		"java.util.Set":  {Expr: "Collections.emptySet()", Imports: []string{collections}},
		"java.util.Map":  {Expr: "Collections.emptyMap()", Imports: []string{collections}},

		"java.util.UUID": {Expr: `UUID.fromString("00000000-0000-0000-0000-000000000000")`},
		"org.spongepowered.api.data.DataContainer": {
			Expr:    "new MemoryDataContainer()",
			Imports: []string{"org.spongepowered.api.data.MemoryDataContainer"},
		},
		"org.spongepowered.api.text.Text": {Expr: "Text.of()"},
		"org.spongepowered.api.service.economy.Currency": {
			Expr:    "Sponge.getServiceManager().provideUnchecked(EconomyService.class).getDefaultCurrency()",
			Imports: []string{"org.spongepowered.api.service.economy.EconomyService"},
		},
	}

	catalog := []struct {
		typ, registry, value string
	}{
		{"org.spongepowered.api.item.ItemType", "org.spongepowered.api.item.ItemTypes", "NONE"},
		{"org.spongepowered.api.block.BlockType", "org.spongepowered.api.block.BlockTypes", "AIR"},
		{"org.spongepowered.api.statistic.Achievement", "org.spongepowered.api.statistic.Achievements", "OPEN_INVENTORY"},
		{"org.spongepowered.api.data.type.ArmorType", "org.spongepowered.api.data.type.ArmorTypes", "LEATHER"},
		{"org.spongepowered.api.world.biome.BiomeType", "org.spongepowered.api.world.biome.BiomeTypes", "PLAINS"},
		{"org.spongepowered.api.boss.BossBarColor", "org.spongepowered.api.boss.BossBarColors", "PURPLE"},
		{"org.spongepowered.api.data.type.DyeColor", "org.spongepowered.api.data.type.DyeColors", "WHITE"},
		{"org.spongepowered.api.item.Enchantment", "org.spongepowered.api.item.Enchantments", "SHARPNESS"},
		{"org.spongepowered.api.entity.EntityType", "org.spongepowered.api.entity.EntityTypes", "PIG"},
		{"org.spongepowered.api.item.FireworkShape", "org.spongepowered.api.item.FireworkShapes", "BURST"},
		{"org.spongepowered.api.extra.fluid.FluidType", "org.spongepowered.api.extra.fluid.FluidTypes", "WATER"},
		{"org.spongepowered.api.world.PortalAgentType", "org.spongepowered.api.world.PortalAgentTypes", "DEFAULT"},
		{"org.spongepowered.api.effect.potion.PotionEffectType", "org.spongepowered.api.effect.potion.PotionEffectTypes", "SPEED"},
		{"org.spongepowered.api.effect.sound.SoundType", "org.spongepowered.api.effect.sound.SoundTypes", "ENTITY_EXPERIENCE_ORB_PICKUP"},
		{"org.spongepowered.api.text.format.TextColor", "org.spongepowered.api.text.format.TextColors", "WHITE"},
		{"org.spongepowered.api.data.type.ToolType", "org.spongepowered.api.data.type.ToolTypes", "WOOD"},
	}
	for _, c := range catalog {
		t[c.typ] = Default{
			Expr:    typeres.SimpleName(c.registry) + "." + c.value,
			Imports: []string{c.registry},
		}
	}
	return t
}
