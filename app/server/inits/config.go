package inits

import (
	"fmt"
	"inkwell-blog/app/server/config"
	"inkwell-blog/app/server/constants"
	"os"
	"strconv"
	"strings"
)

func Config() (cfg *config.Config, err error) {
	cfg = &config.Config{}

	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.System.Listen = ":1323" // default listen address
	} else {
		cfg.System.Listen = listen
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	if redisconn, exist := os.LookupEnv("REDIS_CONN"); !exist {
		return nil, fmt.Errorf("REDIS_CONN environment variable not set")
	} else {
		cfg.System.RedisConnectionString = redisconn
	}

	if sigsk, exist := os.LookupEnv("SIGNATURE_SECRET_KEY"); !exist {
		return nil, fmt.Errorf("SIGNATURE_SECRET_KEY environment variable not set")
	} else {
		cfg.Security.SignatureSecretKey = sigsk
	}

	if mailaddr, exist := os.LookupEnv("MAIL_ADDRESS"); !exist {
		return nil, fmt.Errorf("MAIL_ADDRESS environment variable not set")
	} else {
		cfg.Mail.Address = mailaddr
	}

	if mailpass, exist := os.LookupEnv("MAIL_PASSWORD"); !exist {
		return nil, fmt.Errorf("MAIL_PASSWORD environment variable not set")
	} else {
		cfg.Mail.Password = mailpass
	}

	if mailhost, exist := os.LookupEnv("MAIL_HOST"); !exist {
		cfg.Mail.Host = "smtp.gmail.com"
	} else {
		cfg.Mail.Host = mailhost
	}

	if mailport, exist := os.LookupEnv("MAIL_PORT"); !exist {
		cfg.Mail.Port = 465
	} else if port, err := strconv.Atoi(mailport); err != nil {
		return nil, fmt.Errorf("MAIL_PORT environment variable is not a number: %w", err)
	} else {
		cfg.Mail.Port = port
	}

	if policy, exist := os.LookupEnv("COMMENT_DELETE_POLICY"); !exist {
		cfg.Policy.CommentDelete = constants.CommentDeleteAnyUser
	} else if policy != constants.CommentDeleteAnyUser && policy != constants.CommentDeleteOwnerOrAdmin {
		return nil, fmt.Errorf("COMMENT_DELETE_POLICY must be %q or %q", constants.CommentDeleteAnyUser, constants.CommentDeleteOwnerOrAdmin)
	} else {
		cfg.Policy.CommentDelete = policy
	}

	return cfg, nil
}
