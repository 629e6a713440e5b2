package scan

// UnknownService is returned for every port without an IANA assignment
// in the table below. The lookup is total: it never fails.
const UnknownService = "unknown"

// serviceNames maps well-known ports to their conventional service
// names, based on IANA registrations. The actual service behind a port
// may of course differ.
var serviceNames = map[int]string{
	20:    "ftp-data",
	21:    "ftp",
	22:    "ssh",
	23:    "telnet",
	25:    "smtp",
	53:    "domain",
	67:    "dhcps",
	68:    "dhcpc",
	69:    "tftp",
	80:    "http",
	88:    "kerberos",
	110:   "pop3",
	111:   "rpcbind",
	119:   "nntp",
	123:   "ntp",
	135:   "msrpc",
	137:   "netbios-ns",
	138:   "netbios-dgm",
	139:   "netbios-ssn",
	143:   "imap",
	161:   "snmp",
	162:   "snmptrap",
	179:   "bgp",
	389:   "ldap",
	443:   "https",
	445:   "microsoft-ds",
	465:   "smtps",
	500:   "isakmp",
	514:   "syslog",
	515:   "printer",
	554:   "rtsp",
	587:   "submission",
	631:   "ipp",
	636:   "ldaps",
	873:   "rsync",
	993:   "imaps",
	995:   "pop3s",
	1080:  "socks",
	1433:  "ms-sql-s",
	1521:  "oracle",
	1723:  "pptp",
	1883:  "mqtt",
	2049:  "nfs",
	2181:  "zookeeper",
	2375:  "docker",
	3000:  "ppp",
	3128:  "squid-http",
	3306:  "mysql",
	3389:  "ms-wbt-server",
	4222:  "nats",
	5060:  "sip",
	5222:  "xmpp-client",
	5432:  "postgresql",
	5672:  "amqp",
	5900:  "vnc",
	6379:  "redis",
	6667:  "irc",
	8080:  "http-alt",
	8443:  "https-alt",
	9090:  "websm",
	9200:  "elasticsearch",
	11211: "memcached",
	27017: "mongodb",
	50051: "grpc",
}

// ServiceName resolves a port to its conventional service name, or
// UnknownService for unmapped ports.
func ServiceName(port int) string {
	if name, ok := serviceNames[port]; ok {
		return name
	}

	return UnknownService
}
