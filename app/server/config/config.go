package config

type Config struct {
	System struct {
		IsProd                bool   // production mode switches logging to JSON
		Listen                string // listen address
		DBConnectionString    string // Postgres connection string
		RedisConnectionString string // Redis connection string, sessions live here
	}
	Security struct {
		SignatureSecretKey string // signing key for session cookies, rotating it invalidates every live session
	}
	Mail struct {
		Host     string // SMTP host for the contact relay
		Port     int    // implicit-TLS SMTP port
		Address  string // operator address, both sender and recipient of relayed messages
		Password string // operator credential
	}
	Policy struct {
		CommentDelete string // who may delete comments, see constants.CommentDelete*
	}
}
