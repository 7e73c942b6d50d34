package config

import "testing"

func TestProfileTable(t *testing.T) {
	tests := []struct {
		d             Difficulty
		enemySpeed    float64
		spawnInterval float64
		bulletSpeed   float64
		maxHealth     int
		enemiesShoot  bool
		powerUps      bool
	}{
		{Easy, 150, 0.6, 700, 3, false, true},
		{Medium, 200, 0.4, 600, 3, false, true},
		{Hard, 300, 0.25, 500, 3, false, true},
		{Insane, 450, 0.15, 800, 1, true, false},
		{SeriouslyInsane, 600, 0.1, 1000, 1, true, false},
		{Unbeatable, 700, 0.08, 1000, 1, true, false},
		{BlindNightmare, 600, 0.1, 1200, 1, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.d.Slug(), func(t *testing.T) {
			p := tc.d.Profile()
			if p.EnemySpeed != tc.enemySpeed {
				t.Errorf("EnemySpeed = %v, expected %v", p.EnemySpeed, tc.enemySpeed)
			}
			if p.SpawnInterval != tc.spawnInterval {
				t.Errorf("SpawnInterval = %v, expected %v", p.SpawnInterval, tc.spawnInterval)
			}
			if p.BulletSpeed != tc.bulletSpeed {
				t.Errorf("BulletSpeed = %v, expected %v", p.BulletSpeed, tc.bulletSpeed)
			}
			if p.MaxHealth != tc.maxHealth {
				t.Errorf("MaxHealth = %d, expected %d", p.MaxHealth, tc.maxHealth)
			}
			if p.EnemiesShoot() != tc.enemiesShoot {
				t.Errorf("EnemiesShoot() = %v, expected %v", p.EnemiesShoot(), tc.enemiesShoot)
			}
			if p.PowerUps != tc.powerUps {
				t.Errorf("PowerUps = %v, expected %v", p.PowerUps, tc.powerUps)
			}
		})
	}
}

func TestProfileModeFlags(t *testing.T) {
	if Unbeatable.Profile().EnemyFireInterval != 0.5 {
		t.Errorf("Unbeatable enemy fire interval should be 0.5, got %v", Unbeatable.Profile().EnemyFireInterval)
	}
	if Unbeatable.Profile().HasShotLockout() {
		t.Error("Unbeatable has no shot lockout")
	}
	if Insane.Profile().ShotLockout != 5 || BlindNightmare.Profile().ShotLockout != 2 {
		t.Error("lockout should be 5s on Insane and 2s on Blind Nightmare")
	}
	for _, d := range Difficulties() {
		if d.Profile().Blind != (d == BlindNightmare) {
			t.Errorf("%s: Blind = %v", d, d.Profile().Blind)
		}
	}
}

func TestDifficultyCycle(t *testing.T) {
	if BlindNightmare.Next() != Easy {
		t.Errorf("Next() should wrap to Easy, got %s", BlindNightmare.Next())
	}
	if Easy.Prev() != BlindNightmare {
		t.Errorf("Prev() should wrap to Blind Nightmare, got %s", Easy.Prev())
	}
	if Medium.Next() != Hard {
		t.Errorf("Medium.Next() = %s, expected Hard", Medium.Next())
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", Easy, false},
		{"Seriously Insane", SeriouslyInsane, false},
		{"blind-nightmare", BlindNightmare, false},
		{" UNBEATABLE ", Unbeatable, false},
		{"nightmare", Medium, true},
	}
	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %s, expected %s", tc.in, got, tc.want)
		}
	}
}

func TestDifficultyManagerClamps(t *testing.T) {
	dm := NewDifficultyManager(DefaultGameConfig().Scaling)

	if dm.SpeedMultiplier() != 1 || dm.SpawnMultiplier() != 1 {
		t.Fatalf("multipliers should start at 1, got %v / %v", dm.SpeedMultiplier(), dm.SpawnMultiplier())
	}

	prevSpeed, prevSpawn := dm.SpeedMultiplier(), dm.SpawnMultiplier()
	for i := 0; i < 500; i++ {
		dm.OnKill()
		if dm.SpeedMultiplier() < prevSpeed || dm.SpawnMultiplier() > prevSpawn {
			t.Fatalf("kill %d loosened the pace", i)
		}
		if dm.SpeedMultiplier() > 3 || dm.SpawnMultiplier() < 0.3 {
			t.Fatalf("kill %d left multipliers out of range: %v / %v", i, dm.SpeedMultiplier(), dm.SpawnMultiplier())
		}
		prevSpeed, prevSpawn = dm.SpeedMultiplier(), dm.SpawnMultiplier()
	}

	if dm.SpeedMultiplier() != 3 {
		t.Errorf("speed multiplier should saturate at 3, got %v", dm.SpeedMultiplier())
	}
	if dm.SpawnMultiplier() != 0.3 {
		t.Errorf("spawn multiplier should saturate at 0.3, got %v", dm.SpawnMultiplier())
	}

	dm.Reset()
	if dm.SpeedMultiplier() != 1 || dm.SpawnMultiplier() != 1 {
		t.Error("Reset() should restore both multipliers to 1")
	}
}
