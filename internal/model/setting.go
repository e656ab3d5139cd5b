package model

type Setting struct {
	Key      string `json:"key" gorm:"primaryKey;size:64"`
	Value    string `json:"value"`
	Desc     string `json:"desc"`
	Category string `json:"category" gorm:"size:32"`
}

// All 返回需要迁移的全部模型，顺序即建表顺序
func All() []interface{} {
	return []interface{}{
		&User{},
		&Setting{},
		&Image{},
		&Comment{},
		&Favorite{},
	}
}
