package track

// table holds one packed entry per location, bytes big-endian as
// [anode, cathode, anode2, cathode2]. 0xFF marks an unused second slot.
// Platform entries repeat their single track neighbor in all four bytes.
var table = [NumLocations]entry{
	0x0127FFFF, // 0x00
	0x0200FFFF, // 0x01
	0x0301FFFF, // 0x02
	0x0402FFFF, // 0x03
	0x0503FFFF, // 0x04
	0x0604FFFF, // 0x05
	0x0705FFFF, // 0x06
	0x0806FFFF, // 0x07
	0x09077CFF, // 0x08 switch
	0x0A08FFFF, // 0x09
	0x0B09FFFF, // 0x0A
	0x0C0AFFFF, // 0x0B
	0x0D0BFFFF, // 0x0C
	0x0E0CFFFF, // 0x0D
	0x0F0DFFFF, // 0x0E
	0x100EFFFF, // 0x0F
	0x110FFFFF, // 0x10
	0x1210FFFF, // 0x11
	0x1311FFFF, // 0x12
	0x1412FFFF, // 0x13
	0x1513FFFF, // 0x14
	0x1614FFFF, // 0x15
	0x1715FFFF, // 0x16
	0x1816FFFF, // 0x17
	0x19178082, // 0x18 switch
	0x1A18FFFF, // 0x19
	0x1B19FFFF, // 0x1A
	0x1C1AFFFF, // 0x1B
	0x1D1BFFFF, // 0x1C
	0x1E1CFFFF, // 0x1D
	0x1F1DFFFF, // 0x1E
	0x201EFFFF, // 0x1F
	0x211FFFFF, // 0x20
	0x2220FFFF, // 0x21
	0x2321FFFF, // 0x22
	0x2422FFFF, // 0x23
	0x2523FFFF, // 0x24
	0x2624FFFF, // 0x25
	0x2725FFFF, // 0x26
	0x0026FFFF, // 0x27
	0x294FFFFF, // 0x28
	0x2A28FFFF, // 0x29
	0x2B29FFFF, // 0x2A
	0x2C2AFFFF, // 0x2B
	0x2D2BFFFF, // 0x2C
	0x2E2CFFFF, // 0x2D
	0x2F2DFFFF, // 0x2E
	0x302EFFFF, // 0x2F
	0x312FFF7D, // 0x30 switch
	0x3230FFFF, // 0x31
	0x3331FFFF, // 0x32
	0x3432FFFF, // 0x33
	0x3533FFFF, // 0x34
	0x3634FFFF, // 0x35
	0x3735FFFF, // 0x36
	0x3836FFFF, // 0x37
	0x393781FF, // 0x38 switch
	0x3A38FFFF, // 0x39
	0x3B39FFFF, // 0x3A
	0x3C3AFFFF, // 0x3B
	0x3B3DFFFF, // 0x3C
	0x3C3EFFFF, // 0x3D
	0x3D3FFFFF, // 0x3E
	0x3E40FFFF, // 0x3F
	0x3F41FFFF, // 0x40
	0x4042FFFF, // 0x41
	0x4143FFFF, // 0x42
	0x4244FFFF, // 0x43
	0x4345FFFF, // 0x44
	0x4446FFFF, // 0x45
	0x45477EFF, // 0x46 switch
	0x4648FFFF, // 0x47
	0x4749FFFF, // 0x48
	0x484AFFFF, // 0x49
	0x494BFFFF, // 0x4A
	0x4A4CFFFF, // 0x4B
	0x4B4DFFFF, // 0x4C
	0x4C4EFFFF, // 0x4D
	0x4D4FFFFF, // 0x4E
	0x4E28FFFF, // 0x4F
	0x6F51FFFF, // 0x50
	0x5052FFFF, // 0x51
	0x5153FFFF, // 0x52
	0x5254FFFF, // 0x53
	0x5355707B, // 0x54 switch
	0x5456FFFF, // 0x55
	0x5557FFFF, // 0x56
	0x5658FFFF, // 0x57
	0x5759FFFF, // 0x58
	0x585AFFFF, // 0x59
	0x595B7FFF, // 0x5A switch
	0x5A5CFFFF, // 0x5B
	0x5B5DFFFF, // 0x5C
	0x5C5EFFFF, // 0x5D
	0x5D5FFFFF, // 0x5E
	0x5E60FFFF, // 0x5F
	0x5F61FFFF, // 0x60
	0x6062FFFF, // 0x61
	0x6163FFFF, // 0x62
	0x6264FFFF, // 0x63
	0x6365FFFF, // 0x64
	0x6466FFFF, // 0x65
	0x6567FF83, // 0x66 switch
	0x6668FFFF, // 0x67
	0x6769FFFF, // 0x68
	0x686AFFFF, // 0x69
	0x696BFFFF, // 0x6A
	0x6A6CFFFF, // 0x6B
	0x6B6DFFFF, // 0x6C
	0x6C6EFFFF, // 0x6D
	0x6D6FFFFF, // 0x6E
	0x6E50FFFF, // 0x6F
	0x7154FFFF, // 0x70
	0x7270FFFF, // 0x71
	0x7371FFFF, // 0x72
	0x7472FFFF, // 0x73
	0x7573FFFF, // 0x74
	0x7674FFFF, // 0x75
	0x7775FFFF, // 0x76
	0x7876FFFF, // 0x77
	0x7977FFFF, // 0x78
	0x7A78FFFF, // 0x79
	0x7B79FFFF, // 0x7A
	0x547AFFFF, // 0x7B
	0x7D08FFFF, // 0x7C
	0x7C30FFFF, // 0x7D
	0x7F46FFFF, // 0x7E
	0x5A7EFFFF, // 0x7F
	0x8118FFFF, // 0x80
	0x3880FFFF, // 0x81
	0x1883FFFF, // 0x82
	0x8266FFFF, // 0x83
	0x03030303, // 0x84 platform
	0x0E0E0E0E, // 0x85 platform
	0x1F1F1F1F, // 0x86 platform
	0x24242424, // 0x87 platform
	0x2C2C2C2C, // 0x88 platform
	0x34343434, // 0x89 platform
	0x40404040, // 0x8A platform
	0x4B4B4B4B, // 0x8B platform
	0x5F5F5F5F, // 0x8C platform
	0x6C6C6C6C, // 0x8D platform
	0x74747474, // 0x8E platform
	0x78787878, // 0x8F platform
}
