package service

import (
	"gitee.com/taoJie_1/support-agent/service/user"
)

type ServiceGroup struct {
	UserServiceGroup user.ServiceGroup
}

var Service = new(ServiceGroup)
