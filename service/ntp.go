package service

import (
    "time"

    "github.com/beevik/ntp"
    "go.dedis.ch/onet/v3/log"
    "golang.org/x/xerrors"
)

var NTP_SERVERS = [...]string{
    "pool.ntp.org",
    "time.google.com",
}

// localTime is a hook for tests.
var localTime = time.Now

func getRemoteTime() (time.Time, error) {
    for _, server := range NTP_SERVERS {
        remote, err := ntp.Time(server)
        if err != nil {
            log.Error(err)
            continue
        }
        return remote, nil
    }
    return time.Time{}, xerrors.New("no NTP server reachable")
}
