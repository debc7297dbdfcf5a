package catalog

// Document is the on-disk catalog shape. Durations are whole seconds.
type Document struct {
	Levels      []int           `yaml:"levels"`
	DropChances dropChancesDoc  `yaml:"drop_chances"`
	Crops       []cropDoc       `yaml:"crops"`
	Animals     []animalDoc     `yaml:"animals"`
	Buildings   []buildingDoc   `yaml:"buildings"`
	Territory   []territoryDoc  `yaml:"territory"`
	Pests       []pestDoc       `yaml:"pests"`
	Collections []collectionDoc `yaml:"collections"`
	Quests      []questDoc      `yaml:"quests"`
	Market      []marketDoc     `yaml:"market"`
}

type dropChancesDoc struct {
	Crop   *float64 `yaml:"crop"`
	Animal *float64 `yaml:"animal"`
}

type cropDoc struct {
	Kind          string         `yaml:"kind"`
	Cost          map[string]int `yaml:"cost"`
	GrowSeconds   int            `yaml:"grow_seconds"`
	WitherSeconds int            `yaml:"wither_seconds"`
	Yield         map[string]int `yaml:"yield"`
	Experience    int            `yaml:"experience"`
	LevelRequired int            `yaml:"level_required"`
	Drops         []string       `yaml:"collection_drops"`
	Butterflies   bool           `yaml:"butterflies"`
}

type animalDoc struct {
	Kind              string         `yaml:"kind"`
	Cost              map[string]int `yaml:"cost"`
	AdultSeconds      int            `yaml:"adult_seconds"`
	ProductionSeconds int            `yaml:"production_seconds"`
	Yield             map[string]int `yaml:"production_yield"`
	FeedCost          map[string]int `yaml:"feed_cost"`
	Experience        int            `yaml:"experience"`
	LevelRequired     int            `yaml:"level_required"`
	Drops             []string       `yaml:"collection_drops"`
}

type buildingDoc struct {
	Kind          string         `yaml:"kind"`
	Cost          map[string]int `yaml:"cost"`
	BuildSeconds  int            `yaml:"build_seconds"`
	Production    map[string]int `yaml:"production"`
	LevelRequired int            `yaml:"level_required"`
}

type hazardDoc struct {
	Pest   string  `yaml:"pest"`
	Chance float64 `yaml:"chance"`
}

type territoryDoc struct {
	Kind         string         `yaml:"kind"`
	ClearCost    map[string]int `yaml:"clear_cost"`
	ClearSeconds int            `yaml:"clear_seconds"`
	Rewards      map[string]int `yaml:"rewards"`
	Experience   int            `yaml:"experience"`
	Hazards      []hazardDoc    `yaml:"hazards"`
}

type pestDoc struct {
	Kind         string         `yaml:"kind"`
	ChaseCost    map[string]int `yaml:"chase_cost"`
	ChaseSeconds int            `yaml:"chase_seconds"`
	Rewards      map[string]int `yaml:"rewards"`
	Experience   int            `yaml:"experience"`
}

type collectionDoc struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	ItemsNeeded map[string]int `yaml:"items_needed"`
	Rewards     map[string]int `yaml:"rewards"`
	Experience  int            `yaml:"experience"`
}

type questDoc struct {
	ID                string         `yaml:"id"`
	Name              string         `yaml:"name"`
	RequiredBuildings []string       `yaml:"required_buildings"`
	RequiredResources map[string]int `yaml:"required_resources"`
	Rewards           map[string]int `yaml:"rewards"`
	Experience        int            `yaml:"experience"`
	LevelRequired     int            `yaml:"level_required"`
}

type marketDoc struct {
	ID      string         `yaml:"id"`
	Cost    map[string]int `yaml:"cost"`
	Rewards map[string]int `yaml:"rewards"`
}
