package initializers

import (
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectToDB() {
	var (
		db  *gorm.DB
		err error
	)

	switch GetEnv("DB_DRIVER", "sqlite") {
	case "mysql":
		db, err = gorm.Open(mysql.Open(GetEnv("DB_URL", "")), &gorm.Config{})
	default:
		db, err = gorm.Open(sqlite.Open(GetEnv("DB_SOURCE", "hameed.db")), &gorm.Config{})
	}

	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	DB = db
}
