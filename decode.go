package redkv

import goredis "github.com/redis/go-redis/v9"

// One decoder per reply shape. Each turns the command's error into an *Error
// named after the command.

func decodeStatus(key string, cmd goredis.Cmder) error {
	if err := cmd.Err(); err != nil {
		return newError(cmd.Name(), key, err)
	}
	return nil
}

func decodeString(key string, cmd *goredis.StringCmd) (string, error) {
	v, err := cmd.Result()
	if err != nil {
		return "", newError(cmd.Name(), key, err)
	}
	return v, nil
}

// decodeStringMap never returns a nil map on success; HGETALL on a missing key
// is an empty hash, not an error.
func decodeStringMap(key string, cmd *goredis.MapStringStringCmd) (map[string]string, error) {
	m, err := cmd.Result()
	if err != nil {
		return nil, newError(cmd.Name(), key, err)
	}
	if m == nil {
		m = make(map[string]string)
	}
	return m, nil
}
